package configs

// Configurable is a setting that may be given in a config file.
// ConfigExpr is its path in the file.
type Configurable interface {
	ConfigExpr() string
}
