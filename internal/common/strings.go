package common

// UnknownStr is printed for enum values without a name.
const UnknownStr = "unknown"
