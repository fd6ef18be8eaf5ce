package profile

import (
	"fmt"
	"slices"

	"git.sr.ht/~spc/go-ini"

	"github.com/microutils/settings"
)

type clientINI struct {
	Client struct {
		ID string `ini:"id"`
	} `ini:"client"`
	Server struct {
		URL string `ini:"url"`
	} `ini:"server"`
	Log struct {
		Level string `ini:"level"`
	} `ini:"log"`
}

type windowINI struct {
	Window struct {
		Width  string `ini:"width"`
		Height string `ini:"height"`
		Theme  string `ini:"theme"`
	} `ini:"window"`
}

// layout binds the keys of a profile to the fields of an INI document.
// Key "a.b" is property b of section [a].
type layout struct {
	doc    any
	fields map[string]*string
}

func (k Kind) layout() (layout, error) {
	switch k {
	case Client:
		doc := &clientINI{}
		return layout{doc: doc, fields: map[string]*string{
			"client.id":  &doc.Client.ID,
			"server.url": &doc.Server.URL,
			"log.level":  &doc.Log.Level,
		}}, nil
	case Window:
		doc := &windowINI{}
		return layout{doc: doc, fields: map[string]*string{
			"window.width":  &doc.Window.Width,
			"window.height": &doc.Window.Height,
			"window.theme":  &doc.Window.Theme,
		}}, nil
	default:
		return layout{}, fmt.Errorf("profile %q has no INI layout", k)
	}
}

// MarshalINI renders the keys of profile k held by s as an INI document.
// Keys outside the profile are not written.
func (k Kind) MarshalINI(s *settings.Store) ([]byte, error) {
	l, err := k.layout()
	if err != nil {
		return nil, err
	}
	for key, field := range l.fields {
		*field, _ = s.Get(key)
	}

	data, err := ini.Marshal(l.doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode INI: %w", err)
	}
	return data, nil
}

// UnmarshalINI sets the keys of profile k found in data on s. Every
// section of the profile must be present.
func (k Kind) UnmarshalINI(data []byte, s *settings.Store) error {
	l, err := k.layout()
	if err != nil {
		return err
	}
	if err := unmarshalINI(data, l.doc); err != nil {
		return fmt.Errorf("failed to parse INI: %w", err)
	}

	keys := make([]string, 0, len(l.fields))
	for key := range l.fields {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	for _, key := range keys {
		if v := *l.fields[key]; v != "" {
			s.Set(key, v)
		}
	}
	return nil
}

// unmarshalINI turns the panic go-ini raises for a missing section into an
// error.
func unmarshalINI(data []byte, v any) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("incomplete document: %v", r)
		}
	}()
	return ini.UnmarshalWithOptions(data, v, ini.Options{AllowNumberSignComments: true})
}
