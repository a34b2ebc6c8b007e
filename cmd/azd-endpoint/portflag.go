package main

import (
	"github.com/spf13/pflag"

	"github.com/jongio/azd-endpoint/urlvalue"
)

// portFlag keeps the raw --port text so urlvalue applies its own port rules,
// e.g. "8080/tcp" reads as 8080.
type portFlag struct {
	raw string
	set bool
}

var _ pflag.Value = (*portFlag)(nil)

func (p *portFlag) String() string { return p.raw }

func (p *portFlag) Set(s string) error {
	p.raw = s
	p.set = true
	return nil
}

func (p *portFlag) Type() string { return "port" }

// options returns the urlvalue options for the flag, none when it was not given.
func (p *portFlag) options() []urlvalue.Option {
	if !p.set {
		return nil
	}
	return []urlvalue.Option{urlvalue.WithPort(p.raw)}
}
