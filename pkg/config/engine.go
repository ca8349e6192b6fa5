package config

// Engine config keys recognized by exprlang.
const (
	// KeyReservedFunctionsEnabled gates whether the built-in function
	// set (len, contains, humanize, ...) is registered at all. Hosts
	// that want a bare arithmetic/logic engine with only their own
	// functions can disable it.
	KeyReservedFunctionsEnabled = "reserved_functions_enabled"

	// KeyMaxStringLength holds an advisory string length limit that a
	// host may read via MaxStringLength and enforce in its own
	// functions; the engine does not enforce it. Zero means unbounded.
	KeyMaxStringLength = "max_string_length"

	// KeyMaxListLength holds an advisory list length limit that a host
	// may read via MaxListLength and enforce in its own functions; the
	// engine does not enforce it. Zero means unbounded.
	KeyMaxListLength = "max_list_length"
)

// ReservedFunctionsEnabled reports whether the engine's built-in
// function set should be registered. Defaults to true.
func (c Config) ReservedFunctionsEnabled() bool {
	return c.Bool(KeyReservedFunctionsEnabled, true)
}

// MaxStringLength returns the configured string length limit, or 0
// (unbounded) if not set.
func (c Config) MaxStringLength() int {
	return c.Int(KeyMaxStringLength, 0)
}

// MaxListLength returns the configured list length limit, or 0
// (unbounded) if not set.
func (c Config) MaxListLength() int {
	return c.Int(KeyMaxListLength, 0)
}
