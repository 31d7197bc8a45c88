package version

// Injected through the -ldflags during the build process
var (
	version = ""
	commit  = ""
)

func Version() string {
	if version != "" {
		return version
	}

	if commit != "" {
		return commit
	}

	return "unversioned"
}

func Commit() string {
	return commit
}
