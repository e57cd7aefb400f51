// =============================================================================
// HTML Table Converter - Command Flags
// =============================================================================
//
// FLAGS:
//   -h, --help            : Show help
//   -n, --no-header       : Don't write a table header
//   -d, --delimiter arg   : Use arg as column delimiter (default tab)
//   -c, --shade [col]     : Color alternating rows, optionally using hex
//                           value col (defaults to dddddd)
//   -s, --shaderows [col] : Older spelling of -c, kept for scripts
//   -e, --encoding name   : Character encoding of text inputs (default utf-8)
//       --config file     : YAML file with default settings
//       --dry-run         : Build tables without writing output files
//   -j, --jobs n          : Convert up to n files at the same time
//   -v, --verbose         : Print debug output and a summary
//       --version         : Print version information
//
// Flags given on the command line override values from --config.
//
// =============================================================================

package cmd

import (
	"errors"
	"strings"

	"github.com/ibzib/htmltable/internal/config"
	"github.com/spf13/pflag"
)

// options holds the raw flag values for one invocation.
type options struct {
	configFile  string
	noHeader    bool
	delimiter   string
	shade       string
	legacyShade string
	encoding    string
	dryRun      bool
	jobs        int
	verbose     bool
}

// shadeFlags are the flag names that turn on row shading.
var shadeFlags = []string{"shade", "shaderows"}

// register binds the options to a flag set.
func (o *options) register(fs *pflag.FlagSet) {
	fs.StringVar(&o.configFile, "config", "", "read default settings from a YAML file")

	fs.BoolVarP(&o.noHeader, "no-header", "n", false, "don't write a table header")

	fs.StringVarP(&o.delimiter, "delimiter", "d", "", "use arg as column delimiter (default tab)")

	fs.StringVarP(&o.shade, "shade", "c", "",
		"color alternating rows, optionally using hex value col")
	fs.Lookup("shade").NoOptDefVal = config.DefaultShadeColor

	fs.StringVarP(&o.legacyShade, "shaderows", "s", "", "same as --shade")
	fs.Lookup("shaderows").NoOptDefVal = config.DefaultShadeColor
	fs.MarkHidden("shaderows")

	fs.StringVarP(&o.encoding, "encoding", "e", "", "character encoding of text input files (default utf-8)")

	fs.BoolVar(&o.dryRun, "dry-run", false, "build tables without writing output files")

	fs.IntVarP(&o.jobs, "jobs", "j", 1, "convert up to n files at the same time")

	fs.BoolVarP(&o.verbose, "verbose", "v", false, "print debug output and a summary")
}

// resolve merges defaults, the optional config file and the flags into a
// validated configuration.
func (o *options) resolve(fs *pflag.FlagSet) (config.Config, error) {
	cfg := config.Default()

	if o.configFile != "" {
		loaded, err := config.Load(o.configFile)
		if err != nil {
			return config.Config{}, usageErrorf("%v", err)
		}
		cfg = loaded
	}

	if o.noHeader {
		cfg.WriteHeader = false
	}

	if fs.Changed("delimiter") {
		cfg.Delimiter = o.delimiter
	}

	for _, name := range shadeFlags {
		if !fs.Changed(name) {
			continue
		}
		color := fs.Lookup(name).Value.String()
		if err := config.ValidateShadeColor(color); err != nil {
			var verr *config.ValidationError
			if errors.As(err, &verr) {
				return config.Config{}, usageErrorf("Invalid color value: %s", verr.Reason)
			}
			return config.Config{}, usageErrorf("Invalid color value: %v", err)
		}
		cfg.ShadeRows = true
		cfg.ShadeColor = color
	}

	if fs.Changed("encoding") {
		cfg.Encoding = o.encoding
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, usageErrorf("%v", err)
	}

	if o.jobs < 1 {
		return config.Config{}, usageErrorf("--jobs must be at least 1")
	}

	return cfg, nil
}

// normalizeArgs rewrites the optional color argument of -c/-s into the
// "-c=col" form the flag parser understands, and reports a -d flag with no
// value. A word after -c is taken as the color unless it is an option or an
// existing file.
func normalizeArgs(args []string, isFile func(string) bool) ([]string, error) {
	out := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		switch arg {
		case "--":
			return append(out, args[i:]...), nil

		case "-d", "--delimiter":
			if i+1 >= len(args) {
				return nil, usageErrorf("No delimiter specified following -d flag")
			}
			// The delimiter itself may look like an option, e.g. "-d -".
			out = append(out, arg, args[i+1])
			i++
			continue

		case "-c", "-s", "--shade", "--shaderows", "--colorrows":
			if i+1 < len(args) {
				next := args[i+1]
				if !strings.HasPrefix(next, "-") && !isFile(next) {
					out = append(out, arg+"="+next)
					i++
					continue
				}
			}
		}

		out = append(out, arg)
	}

	return out, nil
}
