// Package conf loads the configuration of the settings tool itself, not
// the settings files it edits.
//
// # Usage
//
// The global Configuration variable is loaded at package initialization:
//
//	import "github.com/microutils/settings/internal/conf"
//
//	func main() {
//	    fmt.Println(conf.Configuration.Profile)
//	}
//
// For other locations (e.g., testing), use ConfigSource:
//
//	cs := &conf.ConfigSource{
//	    Path:      "/custom/path/config.toml",
//	    DropInDir: "/custom/path/config.toml.d",
//	}
//	config, err := cs.Read()
//
// # Load Order
//
//  1. Embedded defaults (default.toml)
//  2. Main config file: /etc/settings/config.toml
//  3. Drop-in files: /etc/settings/config.toml.d/*.toml, in lexicographic order
//
// Keys absent from a layer keep the value of the layer below. configDTO
// uses pointer fields so that "not set" differs from "set to empty".
package conf
