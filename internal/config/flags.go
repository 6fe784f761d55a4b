package config

import (
	"flag"
	"io"
)

// FlagSet binds the command line flags onto a Config. The tenant and list
// flags have a short and a long spelling.
type FlagSet struct {
	*flag.FlagSet

	cfg     *Config
	region  string
	Version bool
}

// NewFlagSet returns a flag set writing into cfg. Usage and errors go to
// output.
func NewFlagSet(name string, cfg *Config, output io.Writer) *FlagSet {
	fs := &FlagSet{
		FlagSet: flag.NewFlagSet(name, flag.ContinueOnError),
		cfg:     cfg,
	}
	fs.SetOutput(output)

	fs.StringVar(&cfg.Tenant, "t", "", "the reading lists tenant short code (shorthand)")
	fs.StringVar(&cfg.Tenant, "tenant", "", "the reading lists tenant short code")
	fs.StringVar(&cfg.ListID, "l", "", "the list id to look up (shorthand)")
	fs.StringVar(&cfg.ListID, "list", "", "the list id to look up")
	fs.StringVar(&fs.region, "region", "", "talis region: eu or ca (default $"+EnvRegion+" or eu)")
	fs.StringVar(&cfg.InFile, "infile", "", "input csv file of list ids")
	fs.StringVar(&cfg.OutFile, "outfile", "", "output csv file")
	fs.StringVar(&cfg.LogDir, "log-dir", ".", "directory for the run log file")
	fs.BoolVar(&cfg.Debug, "debug", false, "log at debug level")
	fs.BoolVar(&fs.Version, "version", false, "print version information")

	return fs
}

// Load parses args, reads credentials and region from getenv and resolves
// the config. It does not validate. When --version is given it returns right
// after parsing and leaves the config unresolved.
func (fs *FlagSet) Load(args []string, getenv func(string) string) error {
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.Version {
		return nil
	}

	fs.cfg.Credentials = CredentialsFromEnv(getenv)

	name := fs.region
	if name == "" {
		name = getenv(EnvRegion)
	}
	r, err := ParseRegion(name)
	if err != nil {
		return err
	}
	fs.cfg.Region = r

	return fs.cfg.Resolve()
}
