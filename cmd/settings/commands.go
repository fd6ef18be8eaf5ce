package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/BurntSushi/toml"
	"github.com/urfave/cli/v2"
	"golang.org/x/term"

	"github.com/microutils/settings/internal/l10n"
	"github.com/microutils/settings/internal/profile"
)

func requireArgs(c *cli.Context, n int) error {
	if c.NArg() != n {
		return errors.New(l10n.T("%s expects %d argument(s), got %d", c.Command.Name, n, c.NArg()))
	}
	return nil
}

func getAction(c *cli.Context) error {
	if err := requireArgs(c, 1); err != nil {
		return err
	}
	s, err := openStore(c)
	if err != nil {
		return err
	}
	key := c.Args().First()
	value, ok := s.Get(key)
	if !ok {
		return errors.New(l10n.T("key %q not found in %s", key, s.Path()))
	}
	fmt.Fprintln(c.App.Writer, value)
	return nil
}

func setAction(c *cli.Context) error {
	if err := requireArgs(c, 2); err != nil {
		return err
	}
	key, value := c.Args().Get(0), c.Args().Get(1)
	if err := checkEntry(key, value); err != nil {
		return err
	}
	s, err := openStore(c)
	if err != nil {
		return err
	}
	s.Set(key, value)
	return s.Save()
}

func unsetAction(c *cli.Context) error {
	if err := requireArgs(c, 1); err != nil {
		return err
	}
	s, err := openStore(c)
	if err != nil {
		return err
	}
	s.Delete(c.Args().First())
	return s.Save()
}

func resetAction(c *cli.Context) error {
	s, err := openStore(c)
	if err != nil {
		return err
	}
	s.LoadDefaults(true)
	return s.Save()
}

func listAction(c *cli.Context) error {
	s, err := openStore(c)
	if err != nil {
		return err
	}

	if !isTerminal(c.App.Writer) {
		for _, key := range s.Keys() {
			value, _ := s.Get(key)
			fmt.Fprintf(c.App.Writer, "%s=%s\n", key, value)
		}
		return nil
	}

	w := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
	for _, key := range s.Keys() {
		value, _ := s.Get(key)
		fmt.Fprintf(w, "%s\t%s\n", key, value)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, l10n.TN("%d key in %s", "%d keys in %s", uint32(s.Len()), s.Len(), s.Path()))
	return nil
}

func pathAction(c *cli.Context) error {
	src, err := source(c)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, src.Path())
	return nil
}

func existsAction(c *cli.Context) error {
	src, err := source(c)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, src.Exists())
	return nil
}

func exportAction(c *cli.Context) error {
	s, err := openStore(c)
	if err != nil {
		return err
	}

	switch format := c.String("format"); format {
	case "toml":
		return toml.NewEncoder(c.App.Writer).Encode(s.All())
	case "ini":
		kind, err := profile.Parse(c.String("profile"))
		if err != nil {
			return err
		}
		data, err := kind.MarshalINI(s)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(c.App.Writer, "%s\n", data)
		return err
	default:
		return errors.New(l10n.T("unknown format %q", format))
	}
}

func importAction(c *cli.Context) error {
	if err := requireArgs(c, 1); err != nil {
		return err
	}
	path := c.Args().First()

	switch format := c.String("format"); format {
	case "toml":
		var table map[string]any
		if _, err := toml.DecodeFile(path, &table); err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}
		entries := make(map[string]string)
		flatten("", table, entries)

		keys := make([]string, 0, len(entries))
		for key, value := range entries {
			if err := checkEntry(key, value); err != nil {
				return err
			}
			keys = append(keys, key)
		}
		slices.Sort(keys)

		s, err := openStore(c)
		if err != nil {
			return err
		}
		for _, key := range keys {
			s.Set(key, entries[key])
		}
		return s.Save()
	case "ini":
		kind, err := profile.Parse(c.String("profile"))
		if err != nil {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		s, err := openStore(c)
		if err != nil {
			return err
		}
		if err := kind.UnmarshalINI(data, s); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		return s.Save()
	default:
		return errors.New(l10n.T("unknown format %q", format))
	}
}

// flatten collects every leaf of table into out. Nested tables become
// dotted keys; arrays are joined with commas.
func flatten(prefix string, table map[string]any, out map[string]string) {
	for k, v := range table {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch v := v.(type) {
		case map[string]any:
			flatten(key, v, out)
		case []any:
			parts := make([]string, len(v))
			for i, item := range v {
				parts[i] = fmt.Sprint(item)
			}
			out[key] = strings.Join(parts, ",")
		default:
			out[key] = fmt.Sprint(v)
		}
	}
}

// checkEntry rejects keys and values that would not read back as the
// same key=value line.
func checkEntry(key, value string) error {
	trimmed := strings.TrimSpace(key)
	switch {
	case trimmed == "":
		return errors.New(l10n.T("key must not be empty or blank"))
	case strings.ContainsAny(key, "=\r\n"):
		return errors.New(l10n.T("key %q must not contain '=' or line breaks", key))
	case strings.HasPrefix(trimmed, "#"):
		return errors.New(l10n.T("key %q must not start with '#'", key))
	case strings.ContainsAny(value, "\r\n"):
		return errors.New(l10n.T("value of %q must not contain line breaks", key))
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
