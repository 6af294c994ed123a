package catalog

//go:generate go tool mockery
