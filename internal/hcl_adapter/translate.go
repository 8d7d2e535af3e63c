package hcl_adapter

import "github.com/specialistvlad/gstrings/internal/config"

// translate converts the HCL-specific schema into the agnostic profile.
func translate(root *fileRoot) *config.Profile {
	p := &config.Profile{}
	if s := root.Scan; s != nil {
		p.Encoding = s.Encoding
		p.MinLength = s.MinLength
		p.Whitespace = s.Whitespace
		p.DataOnly = s.DataOnly
		p.Charset = s.Charset
	}
	if d := root.Display; d != nil {
		p.Radix = d.Radix
		p.PrintFileName = d.PrintFileName
		p.Unicode = d.Unicode
		p.Separator = d.Separator
		p.Format = d.Format
	}
	return p
}
