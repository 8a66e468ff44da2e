package config

// Configfile represents the structure of the nbreq.yaml configuration file.
type Configfile struct {
	KernelName         string      `yaml:"kernel_name"`
	RecommendationType string      `yaml:"recommendation_type"`
	EnvironmentsDir    string      `yaml:"environments_dir"`
	Python             string      `yaml:"python"`
	Journal            string      `yaml:"journal"`
	Commands           CommandsDTO `yaml:"commands"`
}

// CommandsDTO overrides the external commands.
//
// Advise and Lock are full command lines run in the resolver work directory.
// Bootstrap, Install, Discover and Kernel are arguments passed to the
// kernel's own Python interpreter; Kernel is followed by the kernel name.
type CommandsDTO struct {
	Advise    []string `yaml:"advise"`
	Lock      []string `yaml:"lock"`
	Bootstrap []string `yaml:"bootstrap"`
	Install   []string `yaml:"install"`
	Discover  []string `yaml:"discover"`
	Kernel    []string `yaml:"kernel"`
}
