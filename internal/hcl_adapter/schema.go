package hcl_adapter

// fileRoot is the top-level structure of a profile file.
type fileRoot struct {
	Scan    *ScanBlock    `hcl:"scan,block"`
	Display *DisplayBlock `hcl:"display,block"`
}

// ScanBlock holds the settings that change which strings are found.
type ScanBlock struct {
	Encoding   *string `hcl:"encoding,optional"`
	MinLength  *int    `hcl:"min_length,optional"`
	Whitespace *bool   `hcl:"whitespace,optional"`
	DataOnly   *bool   `hcl:"data_only,optional"`
	Charset    *string `hcl:"charset,optional"`
}

// DisplayBlock holds the settings that change how found strings are shown.
type DisplayBlock struct {
	Radix         *string `hcl:"radix,optional"`
	PrintFileName *bool   `hcl:"print_file_name,optional"`
	Unicode       *string `hcl:"unicode,optional"`
	Separator     *string `hcl:"separator,optional"`
	Format        *string `hcl:"format,optional"`
}
