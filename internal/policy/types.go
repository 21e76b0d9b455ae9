package policy

// File is the shape of an embedded policy YAML file
type File struct {
	Actions []ActionRule `yaml:"actions"`
}

// ActionRule lists the team roles allowed to perform an action
type ActionRule struct {
	Name  string   `yaml:"name"`
	Roles []string `yaml:"roles"`
}
