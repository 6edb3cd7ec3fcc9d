package manifest

// Manifest is the subset of package.json the generator reads.
type Manifest struct {
	Name        string
	DisplayName string
	Description string
	Version     string
	Publisher   string
	Engines     Engines
	Contributes Contributes
}

// Engines holds the engine compatibility ranges.
type Engines struct {
	VSCode string
}

// Contributes is the "contributes" block. Both members are optional and
// empty when absent.
type Contributes struct {
	Commands      []Command
	Configuration Configuration
}

// Command is a documented extension command. Command doubles as the file
// stem of its <command>.input/<command>.output snippet pair.
type Command struct {
	Title       string
	Description string
	Command     string
}

// Configuration is the "contributes.configuration" block.
type Configuration struct {
	Title      string
	Properties Properties
}

// Property is a single configuration setting keyed by ID.
type Property struct {
	ID          string
	Type        Value
	Default     Value
	Description string
}

// Properties keeps configuration properties in manifest declaration order.
type Properties []Property

// IDs returns the property identifiers in declaration order.
func (p Properties) IDs() []string {
	ids := make([]string, len(p))
	for i, prop := range p {
		ids[i] = prop.ID
	}
	return ids
}

// Lookup returns the property with the given ID.
func (p Properties) Lookup(id string) (Property, bool) {
	for _, prop := range p {
		if prop.ID == id {
			return prop, true
		}
	}
	return Property{}, false
}
