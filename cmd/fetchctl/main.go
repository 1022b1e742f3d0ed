package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/kbukum/fetchkit/fetch"
	"github.com/kbukum/fetchkit/version"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "\n%s\n\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = serviceName
	app.Usage = "Send a JSON request and print the decoded response"
	app.Version = version.Get().String()
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:   flagsConfig,
			Usage:  "Read configuration from `FILE`",
			EnvVar: "FETCHCTL_CONFIG",
		},
		cli.StringFlag{
			Name:  flagsBaseURL,
			Usage: "Resolve relative addresses against `URL`",
		},
		cli.StringFlag{
			Name:  flagsCredential,
			Usage: `Send one extra header, e.g. "Authorization: Bearer t"`,
		},
		cli.DurationFlag{
			Name:  flagTimeout,
			Usage: "Give up on the request after this long",
		},
		cliFlagOutput,
	}

	paramFlags := []cli.Flag{
		cli.StringSliceFlag{
			Name: flagsParam,
			Usage: "Add a parameter as key=value, or key:=<json> for a " +
				"structured value; repeat to add more, order is kept",
		},
	}

	app.Commands = []cli.Command{
		{
			Name:      "get",
			Usage:     "Send a GET; params go in the query string",
			ArgsUsage: "ADDRESS",
			Flags:     paramFlags,
			Action:    requestAction(fetch.Get[responseBody]),
		},
		{
			Name:      "post",
			Usage:     "Send a POST; params go in the JSON body",
			ArgsUsage: "ADDRESS",
			Flags:     paramFlags,
			Action:    requestAction(fetch.Post[responseBody]),
		},
		{
			Name:      "put",
			Usage:     "Send a PUT; params go in the JSON body",
			ArgsUsage: "ADDRESS",
			Flags:     paramFlags,
			Action:    requestAction(fetch.Put[responseBody]),
		},
		{
			Name:      "delete",
			Usage:     "Send a DELETE; params go in the query string",
			ArgsUsage: "ADDRESS",
			Flags:     paramFlags,
			Action:    requestAction(fetch.Remove[responseBody]),
		},
	}
	return app
}
