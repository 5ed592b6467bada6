package constant

// runtime.GOOS values with platform specific behavior.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
	Android = "android"
)
