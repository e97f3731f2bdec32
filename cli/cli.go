package cli

// Version and Date should be set at build time using ldflags, e.g.:
//
//  -ldflags "-X 'github.com/jag-main/go-dev-template/cli.Version=1.2.3' -X 'github.com/jag-main/go-dev-template/cli.Date=2026-08-27'"
var (
	Version string
	Date    string
)
