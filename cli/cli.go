package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"powers-dict/bin/berr"
	"powers-dict/bin/bheader"
	"powers-dict/bin/bpool"
	"powers-dict/bin/lbytes"
	"powers-dict/config"
	"powers-dict/ds"
	"powers-dict/load"
	"powers-dict/model"
	"powers-dict/resolve"
	"powers-dict/ui"
)

type (
	Args struct {
		Config      string          `arg:"-c,--config" help:"config file, or the directory holding it" placeholder:"PATH" default:"PowersConfig.yaml"`
		Load        *LoadCmd        `arg:"subcommand:load" help:"load and resolve the bins, then print a summary"`
		Check       *CheckCmd       `arg:"subcommand:check" help:"check the header of a single bin"`
		Show        *ShowCmd        `arg:"subcommand:show" help:"print a resolved category, power set or power as JSON"`
		Interactive *InteractiveCmd `arg:"subcommand:interactive" help:"browse the resolved powers"`
	}
	LoadCmd  struct{}
	CheckCmd struct {
		File     string `arg:"positional,required" help:"path to a .bin file" placeholder:"FILE"`
		Messages bool   `help:"FILE is a message store"`
	}
	ShowCmd struct {
		Name string `arg:"positional,required" help:"category, category.set or category.set.power" placeholder:"NAME"`
	}
	InteractiveCmd struct{}
)

func (Args) Description() string {
	des := strings.Join(
		[]string{
			"Reads the parser bins of the game client and builds the powers dictionary:",
			"power categories, their power sets and powers, and everything those reach",
			"through pets, granted powers and redirects.",
		},
		"\n",
	)
	des += "\n"
	return des
}

func setupLogging(level slog.Level) {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

func loadDictionary(configPath string) (*config.PowersConfig, *model.Collections, *model.PowersDictionary, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, nil, err
	}
	setupLogging(cfg.LogLevel.Level())

	collections, err := load.Load(cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	dict, err := resolve.Run(collections, resolve.NewOptions(cfg))
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, collections, dict, nil
}

func StartLoading(configPath string) error {
	cfg, collections, dict, err := loadDictionary(configPath)
	if err != nil {
		return err
	}

	slog.Info(
		"loaded powers dictionary",
		"issue", cfg.Issue,
		"source", cfg.Source,
		"categories", len(lo.Filter(collections.PowerCategories.Values(), func(c *model.PowerCategory, _ int) bool {
			return c.IncludeInOutput
		})),
		"power_sets", len(lo.Filter(collections.PowerSets.Values(), func(s *model.BasePowerSet, _ int) bool {
			return s.IncludeInOutput
		})),
		"powers", len(lo.Filter(collections.Powers.Values(), func(p *model.BasePower, _ int) bool {
			return p.IncludeInOutput
		})),
		"top_level", len(dict.TopLevelCategories()),
	)
	for _, category := range dict.TopLevelCategories() {
		fmt.Printf("%s\t%s\t%s\n", category.Name, category.DisplayName, strings.Join(category.ArchetypeNames(), ","))
	}
	return nil
}

func StartChecking(path string, messages bool) error {
	if messages {
		store, err := load.ReadClientMessages(path)
		if err != nil {
			return err
		}
		fmt.Printf("%s: message store with %d messages, %d message ids\n", path, len(store.Messages), store.Len())
		return nil
	}

	bs, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "StartChecking error reading file")
	}
	reader := lbytes.NewBytesReader(bs)
	header, err := bheader.Decode(reader)
	if err != nil {
		return errors.Wrap(err, "StartChecking error reading header")
	}
	pool, err := bpool.Decode(reader)
	if err != nil {
		return errors.Wrap(err, "StartChecking error reading string pool")
	}
	fmt.Printf("%s: build %d, string pool of %d bytes, %d bytes of records\n", path, header.BuildCRC, pool.Len(), len(bs)-int(reader.Pos()))
	return nil
}

// Find looks name up by its number of segments: a category, a power set or a power.
func Find(c *model.Collections, name string) (any, error) {
	key := model.NewNameKey(name)
	var (
		found any
		ok    bool
	)
	switch len(key.Split()) {
	case 1:
		found, ok = c.PowerCategories.Get(key)
	case 2:
		found, ok = c.PowerSets.Get(key)
	case 3:
		found, ok = c.Powers.Get(key)
	}
	if !ok {
		return nil, errors.Errorf("nothing named %q", name)
	}
	return found, nil
}

func StartShowing(configPath string, name string) error {
	_, collections, _, err := loadDictionary(configPath)
	if err != nil {
		return err
	}
	found, err := Find(collections, name)
	if err != nil {
		return err
	}
	fmt.Println(ds.DumpJSON(found))
	return nil
}

func StartInteractive(configPath string) error {
	_, _, dict, err := loadDictionary(configPath)
	if err != nil {
		return err
	}
	return ui.Start(dict)
}

func report(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	var parseErr *berr.ParseError
	if errors.As(err, &parseErr) {
		fmt.Fprintf(os.Stderr, "Cause: %v\n", parseErr)
	}
}

func Start() {
	args := Args{}
	arg.MustParse(&args)
	setupLogging(slog.LevelInfo)

	var err error
	switch {
	case args.Check != nil:
		err = StartChecking(args.Check.File, args.Check.Messages)
	case args.Show != nil:
		err = StartShowing(args.Config, args.Show.Name)
	case args.Interactive != nil:
		err = StartInteractive(args.Config)
	default:
		err = StartLoading(args.Config)
	}
	if err != nil {
		report(err)
		os.Exit(1)
	}
}
