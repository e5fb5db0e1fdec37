package main

import "github.com/namsral/flag"

// Config carries the process configuration, loaded from flags or
// FILLIN_-prefixed environment variables.
type Config struct {
	Serve       bool
	Port        string
	GCPProject  string
	GCPRegion   string
	GeminiModel string
	LogLevel    string
	Clues       bool

	args []string // positional: structure words [output.png]
}

func (c *Config) Load(args []string) error {
	fs := flag.NewFlagSetWithEnvPrefix("fillin", "FILLIN", flag.ContinueOnError)
	fs.BoolVar(&c.Serve, "serve", false, "run the HTTP API instead of solving files")
	fs.StringVar(&c.Port, "port", "8080", "HTTP listen port (serve mode)")
	fs.StringVar(&c.GCPProject, "gcp-project", "", "GCP project for Gemini clue generation; empty disables clues")
	fs.StringVar(&c.GCPRegion, "gcp-region", "", "GCP region for Vertex AI")
	fs.StringVar(&c.GeminiModel, "gemini-model", "", "Gemini model name override")
	fs.StringVar(&c.LogLevel, "log-level", "info", "log level: debug, info, warn, error")
	fs.BoolVar(&c.Clues, "clues", false, "print Gemini clues for the solved grid (needs -gcp-project)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	c.args = fs.Args()
	return nil
}

// Args returns the positional arguments left after flag parsing.
func (c *Config) Args() []string {
	return c.args
}
