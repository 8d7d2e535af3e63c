package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"github.com/specialistvlad/gstrings/internal/app"
	"github.com/specialistvlad/gstrings/internal/config"
)

// Version is the program version, overridden at link time.
var Version = "dev"

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

const usageText = `
gstrings - Display printable strings in the given files.

Usage:
  gstrings [option(s)] [file(s)]

With no file, or when file is -, read standard input.

Options:
  -a, --all                      Scan the whole file (default)
  -d, --data                     Scan only the data sections of the file
  -f, --print-file-name          Print the name of the file before each string
  -n, --bytes=<number>           Print sequences of at least <number> displayable
  -<number>                      characters (default: 4)
  -t, --radix={o,d,x}            Print the location of the string in base 8, 10 or 16
  -o                             An alias for --radix=o
  -w, --whitespace               Include all whitespace as valid string characters
  -e, --encoding={s,S,b,l,B,L}   Select character size and endianness:
                                 s = 7-bit, S = 8-bit, {b,l} = 16-bit, {B,L} = 32-bit
  -U, --unicode={default|show|invalid|hex|escape|highlight}
                                 Specify how to treat UTF-8 encoded unicode characters
                                 (short forms: d, s, i, x, e, h)
  -s, --separator=<string>       String used to separate strings in output
      --charset=<name>           Single-byte character set for 8-bit scanning,
                                 e.g. ISO-8859-1 or windows-1252
      --format={text,json,msgpack}
                                 Output record format (default: text)
      --color={auto,always,never}
                                 When to emit highlight colours (default: auto)
      --workers=<number>         Number of files scanned concurrently (default: 1)
      --config=<path>[,<path>]   HCL profile files or directories, applied in order
      --log-level=<level>        debug, info, warn or error (default: warn)
      --log-format=<format>      text or json (default: text)
  -h, --help                     Display this information
  -v, --version                  Print the program's version number
`

// Usage writes the help text to w.
func Usage(w io.Writer) {
	fmt.Fprint(w, usageText)
}

// lengthShorthand matches the GNU "-<number>" minimum length spelling.
var lengthShorthand = regexp.MustCompile(`^-[0-9]+$`)

// normalizeArgs rewrites "-<number>" into "-n <number>", unless the argument
// is the value of the flag before it.
func normalizeArgs(fs *flag.FlagSet, args []string) []string {
	out := make([]string, 0, len(args)+1)
	for i, a := range args {
		if a == "--" && (i == 0 || !takesValue(fs, args[i-1])) {
			return append(out, args[i:]...)
		}
		if lengthShorthand.MatchString(a) && (i == 0 || !takesValue(fs, args[i-1])) {
			out = append(out, "-n", a[1:])
			continue
		}
		out = append(out, a)
	}
	return out
}

// takesValue reports whether arg is a flag of fs that consumes the next
// argument as its value.
func takesValue(fs *flag.FlagSet, arg string) bool {
	if !strings.HasPrefix(arg, "-") || strings.Contains(arg, "=") {
		return false
	}
	f := fs.Lookup(strings.TrimLeft(arg, "-"))
	if f == nil {
		return false
	}
	if bf, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && bf.IsBoolFlag() {
		return false
	}
	return true
}

// endsWithTerminator reports whether the parser stopped at a "--" argument
// rather than at a file name. A "--" that was the value of the preceding
// flag does not count.
func endsWithTerminator(fs *flag.FlagSet, consumed []string) bool {
	n := len(consumed)
	if n == 0 || consumed[n-1] != "--" {
		return false
	}
	return n == 1 || !takesValue(fs, consumed[n-2])
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
// Only flags present on the command line become overrides, so unset flags
// never mask values coming from a profile.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("gstrings", flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() { Usage(output) }

	var (
		all, dataOnly, printName, whitespace, octal, version bool
		minLen, workers                                      int
		encoding, radix, unicode, separator                  string
		charset, format, color, profiles                     string
		logFormat, logLevel                                  string
	)
	boolFlag := func(p *bool, short, long, usage string) {
		flagSet.BoolVar(p, short, false, usage)
		if long != "" {
			flagSet.BoolVar(p, long, false, usage)
		}
	}
	stringFlag := func(p *string, short, long, value, usage string) {
		if short != "" {
			flagSet.StringVar(p, short, value, usage)
		}
		flagSet.StringVar(p, long, value, usage)
	}

	boolFlag(&all, "a", "all", "Scan the whole file.")
	boolFlag(&dataOnly, "d", "data", "Scan only the data sections.")
	boolFlag(&printName, "f", "print-file-name", "Print the file name before each string.")
	boolFlag(&whitespace, "w", "whitespace", "Include all whitespace in strings.")
	boolFlag(&octal, "o", "", "Print offsets in octal.")
	boolFlag(&version, "v", "version", "Print the version and exit.")
	flagSet.IntVar(&minLen, "n", config.DefaultMinSeqLen, "Minimum string length.")
	flagSet.IntVar(&minLen, "bytes", config.DefaultMinSeqLen, "Minimum string length.")
	stringFlag(&radix, "t", "radix", "", "Offset radix: o, d or x.")
	stringFlag(&encoding, "e", "encoding", "s", "Character encoding: s, S, b, l, B or L.")
	stringFlag(&unicode, "U", "unicode", "default", "Unicode display mode.")
	stringFlag(&separator, "s", "separator", "", "Record separator.")
	stringFlag(&charset, "", "charset", "", "Single-byte character set for 8-bit scanning.")
	stringFlag(&format, "", "format", "text", "Output format: text, json or msgpack.")
	stringFlag(&color, "", "color", app.ColorAuto, "Highlight colours: auto, always or never.")
	stringFlag(&profiles, "", "config", "", "Comma-separated HCL profile paths.")
	stringFlag(&logFormat, "", "log-format", "text", "Log output format. Options: 'text' or 'json'.")
	stringFlag(&logLevel, "", "log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	flagSet.IntVar(&workers, "workers", 1, "Number of files scanned concurrently.")

	// Flags and file names may be interleaved, as with GNU strings.
	var inputs []string
	rest := normalizeArgs(flagSet, args)
	for {
		if err := flagSet.Parse(rest); err != nil {
			if err == flag.ErrHelp {
				return nil, true, nil
			}
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		consumed := rest[:len(rest)-flagSet.NArg()]
		rest = flagSet.Args()
		if len(rest) == 0 {
			break
		}
		if endsWithTerminator(flagSet, consumed) {
			inputs = append(inputs, rest...)
			break
		}
		inputs = append(inputs, rest[0])
		rest = rest[1:]
	}
	slog.Debug("Arguments parsed successfully.", "inputs", inputs)

	if version {
		fmt.Fprintf(output, "gstrings %s\n", Version)
		return nil, true, nil
	}

	set := make(map[string]bool)
	flagSet.Visit(func(f *flag.Flag) { set[f.Name] = true })
	overrides := &config.Profile{}
	if set["e"] || set["encoding"] {
		overrides.Encoding = &encoding
	}
	if set["n"] || set["bytes"] {
		overrides.MinLength = &minLen
	}
	if set["w"] || set["whitespace"] {
		overrides.Whitespace = &whitespace
	}
	switch {
	case set["d"] || set["data"]:
		overrides.DataOnly = &dataOnly
	case set["a"] || set["all"]:
		overrides.DataOnly = new(bool)
	}
	if set["charset"] {
		overrides.Charset = &charset
	}
	if set["o"] && octal {
		radix = "o"
		overrides.Radix = &radix
	}
	if set["t"] || set["radix"] {
		overrides.Radix = &radix
	}
	if set["f"] || set["print-file-name"] {
		overrides.PrintFileName = &printName
	}
	if set["U"] || set["unicode"] {
		overrides.Unicode = &unicode
	}
	if set["s"] || set["separator"] {
		overrides.Separator = &separator
	}
	if set["format"] {
		overrides.Format = &format
	}

	logFormat = strings.ToLower(logFormat)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel = strings.ToLower(logLevel)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	var profilePaths []string
	for _, p := range strings.Split(profiles, ",") {
		if p = strings.TrimSpace(p); p != "" {
			profilePaths = append(profilePaths, p)
		}
	}

	cfg, err := app.NewConfig(app.Config{
		Inputs:       inputs,
		ProfilePaths: profilePaths,
		Overrides:    overrides,
		LogFormat:    logFormat,
		LogLevel:     logLevel,
		Workers:      workers,
		Color:        strings.ToLower(color),
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", cfg)
	return cfg, false, nil
}
