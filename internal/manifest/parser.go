package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	generr "github.com/vrcomputing/readmegen/internal/errors"
)

// rawManifest mirrors package.json with pointer fields so that an absent
// key can be told apart from an empty string.
type rawManifest struct {
	Name        string          `json:"name"`
	DisplayName *string         `json:"displayName"`
	Description *string         `json:"description"`
	Version     string          `json:"version"`
	Publisher   string          `json:"publisher"`
	Engines     rawEngines      `json:"engines"`
	Contributes *rawContributes `json:"contributes"`
}

type rawEngines struct {
	VSCode string `json:"vscode"`
}

type rawContributes struct {
	Commands      []rawCommand      `json:"commands"`
	Configuration *rawConfiguration `json:"configuration"`
}

type rawCommand struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Command     *string `json:"command"`
}

type rawConfiguration struct {
	Title      string        `json:"title"`
	Properties rawProperties `json:"properties"`
}

type rawProperty struct {
	Type        Value   `json:"type"`
	Default     Value   `json:"default"`
	Description *string `json:"description"`
}

type namedProperty struct {
	id   string
	prop rawProperty
}

// rawProperties decodes a JSON object into a slice so that declaration
// order survives. A repeated key keeps its first position and its last value.
type rawProperties []namedProperty

func (p *rawProperties) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*p = nil
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("properties must be an object")
	}

	var out rawProperties
	index := make(map[string]int)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		id, _ := keyTok.(string)

		var prop rawProperty
		if err := dec.Decode(&prop); err != nil {
			return fmt.Errorf("property %q: %w", id, err)
		}

		if i, seen := index[id]; seen {
			out[i].prop = prop
			continue
		}
		index[id] = len(out)
		out = append(out, namedProperty{id: id, prop: prop})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*p = out
	return nil
}

// Load reads the manifest at path and returns the typed Manifest. It fails
// with a KindManifestParse error when the file is missing or not JSON, and
// with the joined KindMissingField errors of every absent required field.
func Load(path string) (*Manifest, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("loading manifest %s: %w", path, err)
	}
	return m, nil
}

// Parse decodes manifest bytes. See Load.
func Parse(data []byte) (*Manifest, error) {
	var raw rawManifest
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, generr.Errorf(generr.KindManifestParse, "decoding JSON: %w", err)
	}
	return raw.build()
}

// build converts the raw document, collecting every missing required field
// before failing.
func (r *rawManifest) build() (*Manifest, error) {
	var missing []error
	require := func(v *string, path string) string {
		if v == nil {
			missing = append(missing, generr.Errorf(generr.KindMissingField, "missing required field %q", path))
			return ""
		}
		return *v
	}

	m := &Manifest{
		Name:        r.Name,
		DisplayName: require(r.DisplayName, "displayName"),
		Description: require(r.Description, "description"),
		Version:     r.Version,
		Publisher:   r.Publisher,
		Engines:     Engines{VSCode: r.Engines.VSCode},
	}

	if r.Contributes != nil {
		for i, c := range r.Contributes.Commands {
			path := fmt.Sprintf("contributes.commands[%d]", i)
			m.Contributes.Commands = append(m.Contributes.Commands, Command{
				Title:       require(c.Title, path+".title"),
				Description: require(c.Description, path+".description"),
				Command:     require(c.Command, path+".command"),
			})
		}

		if cfg := r.Contributes.Configuration; cfg != nil {
			m.Contributes.Configuration.Title = cfg.Title
			for _, np := range cfg.Properties {
				path := "contributes.configuration.properties." + np.id
				if np.prop.Type.IsZero() {
					missing = append(missing, generr.Errorf(generr.KindMissingField, "missing required field %q", path+".type"))
				}
				if np.prop.Default.IsZero() {
					missing = append(missing, generr.Errorf(generr.KindMissingField, "missing required field %q", path+".default"))
				}
				m.Contributes.Configuration.Properties = append(m.Contributes.Configuration.Properties, Property{
					ID:          np.id,
					Type:        np.prop.Type,
					Default:     np.prop.Default,
					Description: require(np.prop.Description, path+".description"),
				})
			}
		}
	}

	if len(missing) > 0 {
		return nil, errors.Join(missing...)
	}
	return m, nil
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, generr.Errorf(generr.KindManifestParse, "reading file %s: %w", path, err)
	}
	return data, nil
}
