package main

import "github.com/urfave/cli"

const (
	flagBaseURL     = "base-url"
	flagsBaseURL    = "base-url, b"
	flagConfig      = "config"
	flagsConfig     = "config, c"
	flagCredential  = "credential"
	flagsCredential = "credential, H"
	flagOutput      = "output"
	flagsOutput     = "output, o"
	flagParam       = "param"
	flagsParam      = "param, p"
	flagTimeout     = "timeout"
)

var (
	cliFlagOutput = cli.StringFlag{
		Name:  flagsOutput,
		Usage: "Return output in another format. Supported formats: table, json",
	}
)
