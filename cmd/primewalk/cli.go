// seehuhn.de/go/primewalk - draw walks along the prime numbers
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"seehuhn.de/go/primewalk"
	"seehuhn.de/go/primewalk/imageio"
	"seehuhn.de/go/primewalk/internal/logger"
	"seehuhn.de/go/primewalk/pdfout"
	"seehuhn.de/go/primewalk/primes"
)

// CLI holds the command tree together with its configuration, so that
// several independent instances can run in the same process.
type CLI struct {
	v      *viper.Viper
	root   *cobra.Command
	log    *logrus.Logger
	out    io.Writer
	errOut io.Writer
}

// NewCLI creates the command tree.  Normal output goes to out, log
// messages go to errOut.
func NewCLI(out, errOut io.Writer) *CLI {
	c := &CLI{
		v:      viper.New(),
		log:    logger.Discard(),
		out:    out,
		errOut: errOut,
	}
	c.setupCommands()
	return c
}

// Execute runs the command line given by args.
func (c *CLI) Execute(args []string) error {
	c.root.SetArgs(args)
	return c.root.Execute()
}

func (c *CLI) setupCommands() {
	c.root = &cobra.Command{
		Use:   "primewalk",
		Short: "Draw a walk along the prime numbers",
		Long: `Primewalk draws a path which moves forward by the gap between
consecutive primes and turns by a fixed angle after every step.

The legacy form "primewalk -p1000" sets the prime limit.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.initialize,
		RunE:              c.runRender,
	}
	c.root.SetOut(c.out)
	c.root.SetErr(c.errOut)

	def := primewalk.DefaultConfig()

	pf := c.root.PersistentFlags()
	pf.String("config", "", "config file (default: primewalk.yaml in the working directory)")
	pf.String("log-level", "info", "log level (debug, info, warn, error)")
	pf.Bool("no-color", false, "disable colored log output")
	pf.IntP("limit", "p", def.Limit, "largest number tested for primality")
	pf.String("cache-dir", ".", "directory for cached prime lists")
	pf.Bool("no-cache", false, "compute the primes in memory without using the cache")

	f := c.root.Flags()
	f.StringP("output", "o", "primewalk.png", "output file (.png, .tiff, .bmp or .pdf)")
	f.String("format", "", "image format, overriding the file name extension")
	f.String("heading", "north", "initial heading: north, east, south, west or degrees")
	f.String("turn", "right", "turn after every step: right, left or degrees")
	f.String("color", def.StartColor.String(), "color of the first segment")
	f.Int("size", def.Size, "width and height of the image in pixels")
	f.Float64("scale", def.Scale, "walk units per pixel")
	f.Float64("width", def.LineWidth, "line width in pixels")
	f.String("cap", "square", "line cap: butt, round or square")
	f.String("backend", def.Backend.String(), "rasteriser: coverage or vector")
	f.String("overflow", def.Overflow.String(), "if the walk is too large: error, fit or clip")

	c.bindFlags(c.root)

	c.root.AddCommand(c.newConfigCmd())
	c.root.AddCommand(c.newSieveCmd())
}

// bindFlags makes every flag of cmd available through viper, so that
// values can also come from the config file or the environment.
func (c *CLI) bindFlags(cmd *cobra.Command) {
	for _, fs := range []*pflag.FlagSet{cmd.PersistentFlags(), cmd.Flags()} {
		fs.VisitAll(func(fl *pflag.Flag) {
			c.v.BindPFlag(fl.Name, fl)
		})
	}
}

func (c *CLI) initialize(cmd *cobra.Command, _ []string) error {
	v := c.v
	v.SetEnvPrefix("PRIMEWALK")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if fname := v.GetString("config"); fname != "" {
		v.SetConfigFile(fname)
	} else {
		v.SetConfigName("primewalk")
		v.AddConfigPath(".")
	}
	configErr := v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if configErr != nil && !errors.As(configErr, &notFound) {
		return fmt.Errorf("reading config: %w", configErr)
	}

	colors := !v.GetBool("no-color") && !color.NoColor
	log, err := logger.New(c.errOut, v.GetString("log-level"), colors)
	if err != nil {
		return err
	}
	c.log = log
	if configErr == nil {
		log.WithField("file", v.ConfigFileUsed()).Debug("using config file")
	}
	return nil
}

// renderConfig assembles the render configuration from flags,
// environment and config file.
func (c *CLI) renderConfig() (primewalk.Config, error) {
	v := c.v
	cfg := primewalk.DefaultConfig()
	var err error

	cfg.Limit = v.GetInt("limit")
	if cfg.Heading, err = primewalk.ParseHeading(v.GetString("heading")); err != nil {
		return cfg, err
	}
	if cfg.Turn, err = primewalk.ParseTurn(v.GetString("turn")); err != nil {
		return cfg, err
	}
	if cfg.StartColor, err = primewalk.ParseColor(v.GetString("color")); err != nil {
		return cfg, err
	}
	cfg.Size = v.GetInt("size")
	cfg.Scale = v.GetFloat64("scale")
	cfg.LineWidth = v.GetFloat64("width")
	if cfg.Cap, err = primewalk.ParseCap(v.GetString("cap")); err != nil {
		return cfg, err
	}
	if cfg.Backend, err = primewalk.ParseBackend(v.GetString("backend")); err != nil {
		return cfg, err
	}
	if cfg.Overflow, err = primewalk.ParseOverflow(v.GetString("overflow")); err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

func (c *CLI) source() primewalk.Source {
	if c.v.GetBool("no-cache") {
		return primes.Memory{}
	}
	return primes.NewCache(c.v.GetString("cache-dir"), c.log)
}

func (c *CLI) runRender(cmd *cobra.Command, _ []string) error {
	cfg, err := c.renderConfig()
	if err != nil {
		return err
	}
	fname := c.v.GetString("output")
	src := c.source()

	if strings.EqualFold(filepath.Ext(fname), ".pdf") {
		m, err := pdfout.Render(fname, cfg, src)
		if err != nil {
			return err
		}
		c.log.WithFields(logrus.Fields{
			"file":  fname,
			"steps": m.Steps,
		}).Info("PDF written")
		return nil
	}

	var format imageio.Format
	if name := c.v.GetString("format"); name != "" {
		format, err = imageio.ParseFormat(name)
	} else {
		format, err = imageio.FormatFromPath(fname)
	}
	if err != nil {
		return err
	}

	res, err := primewalk.Render(cfg, src, c.log)
	if err != nil {
		return err
	}
	if err := imageio.Save(fname, res.Image, format); err != nil {
		return err
	}
	c.log.WithFields(logrus.Fields{
		"file":   fname,
		"format": format,
	}).Info("image written")
	return nil
}

// fileConfig is the layout of primewalk.yaml.
type fileConfig struct {
	Limit    int     `yaml:"limit"`
	Heading  string  `yaml:"heading"`
	Turn     string  `yaml:"turn"`
	Color    string  `yaml:"color"`
	Size     int     `yaml:"size"`
	Scale    float64 `yaml:"scale"`
	Width    float64 `yaml:"width"`
	Cap      string  `yaml:"cap"`
	Backend  string  `yaml:"backend"`
	Overflow string  `yaml:"overflow"`
	Output   string  `yaml:"output"`
	CacheDir string  `yaml:"cache-dir"`
}

func (c *CLI) newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := c.renderConfig()
			if err != nil {
				return err
			}
			fc := fileConfig{
				Limit:    cfg.Limit,
				Heading:  strconv.FormatFloat(cfg.Heading, 'g', -1, 64),
				Turn:     strconv.FormatFloat(cfg.Turn, 'g', -1, 64),
				Color:    cfg.StartColor.String(),
				Size:     cfg.Size,
				Scale:    cfg.Scale,
				Width:    cfg.LineWidth,
				Cap:      c.v.GetString("cap"),
				Backend:  cfg.Backend.String(),
				Overflow: cfg.Overflow.String(),
				Output:   c.v.GetString("output"),
				CacheDir: c.v.GetString("cache-dir"),
			}
			enc := yaml.NewEncoder(c.out)
			enc.SetIndent(2)
			if err := enc.Encode(fc); err != nil {
				return err
			}
			return enc.Close()
		},
	}
	// The config command reports the render flags, so it shares them
	// with the root command.
	cmd.Flags().AddFlagSet(c.root.Flags())
	return cmd
}

func (c *CLI) newSieveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sieve",
		Short: "Create the cached prime list without drawing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			limit := c.v.GetInt("limit")
			cache := primes.NewCache(c.v.GetString("cache-dir"), c.log)
			created, err := cache.Ensure(limit)
			if err != nil {
				return err
			}
			state := "exists"
			if created {
				state = "created"
			}
			fmt.Fprintf(c.out, "%s %s\n", cache.Path(limit), state)
			return nil
		},
	}
}
