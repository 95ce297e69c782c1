package config

// Rodatafile represents the structure of the rodata.yaml configuration file.
type Rodatafile struct {
	Version   string            `yaml:"version"`
	Root      string            `yaml:"root"`
	BuildRoot string            `yaml:"buildRoot"`
	Tools     map[string]string `yaml:"tools"`
	Units     []UnitDTO         `yaml:"units"`
}

// UnitDTO represents a unit definition in the configuration.
type UnitDTO struct {
	Name      string            `yaml:"name"`
	Rule      string            `yaml:"rule"`
	Flags     []string          `yaml:"flags"`
	Options   map[string]string `yaml:"options"`
	Includes  []string          `yaml:"includes"`
	Resources []string          `yaml:"resources"`
	Exclude   []string          `yaml:"exclude"`
}
