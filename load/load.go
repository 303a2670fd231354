package load

import (
	"log/slog"
	"os"

	"github.com/pkg/errors"

	"powers-dict/bin/barchetypes"
	"powers-dict/bin/battribs"
	"powers-dict/bin/bboosts"
	"powers-dict/bin/berr"
	"powers-dict/bin/bframe"
	"powers-dict/bin/bheader"
	"powers-dict/bin/bmsg"
	"powers-dict/bin/bpool"
	"powers-dict/bin/bpowercats"
	"powers-dict/bin/bpowers"
	"powers-dict/bin/bpowersets"
	"powers-dict/bin/bvillains"
	"powers-dict/bin/lbytes"
	"powers-dict/config"
	"powers-dict/model"
)

const (
	AttribNamesFile     = "attrib_names.bin"
	BoostSetsFile       = "boostsets.bin"
	ClassesFile         = "classes.bin"
	ClientMessagesFile  = "clientmessages-en.bin"
	PowerCategoriesFile = "powercats.bin"
	PowerSetsFile       = "powersets.bin"
	PowersFile          = "powers.bin"
	VillainClassesFile  = "villain_classes.bin"
	VillainDefFile      = "villaindef.bin"
)

// Collection names one parser bin and how its block decodes.
type Collection[T any] struct {
	File   string
	Name   string
	Decode func(d *bframe.Decoder) (T, error)
}

var (
	AttribNames       = Collection[*model.AttribNames]{AttribNamesFile, "attributes", battribs.Decode}
	Archetypes        = Collection[*barchetypes.Archetypes]{ClassesFile, "classes", barchetypes.DecodeBlock}
	BoostSets         = Collection[*bboosts.BoostSets]{BoostSetsFile, "boost sets", bboosts.DecodeBlock}
	VillainArchetypes = Collection[*barchetypes.Archetypes]{VillainClassesFile, "villain classes", barchetypes.DecodeBlock}
	Villains          = Collection[*bvillains.Villains]{VillainDefFile, "villain definitions", bvillains.DecodeBlock}
	PowerCategories   = Collection[*bpowercats.PowerCategories]{PowerCategoriesFile, "power categories", bpowercats.DecodeBlock}
	PowerSets         = Collection[*bpowersets.PowerSets]{PowerSetsFile, "power sets", bpowersets.DecodeBlock}
	Powers            = Collection[*bpowers.Powers]{PowersFile, "powers", bpowers.DecodeBlock}
)

func readFile(path string) (*lbytes.Reader, error) {
	slog.Info("reading file", "path", path)
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, berr.NewReadError(err)
	}
	return lbytes.NewBytesReader(bs), nil
}

// ReadClientMessages reads the message store every other file localizes its strings with.
func ReadClientMessages(path string) (*bmsg.MessageStore, error) {
	reader, err := readFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "Unable to open client messages!")
	}
	messages, err := bmsg.Decode(reader)
	if err != nil {
		return nil, errors.Wrap(err, "Unable to read client messages!")
	}
	slog.Info("read client messages", "count", messages.Len())
	return messages, nil
}

// ReadCollection reads a parser bin: header, string pool, then the collection's block.
func ReadCollection[T any](path string, messages *bmsg.MessageStore, collection Collection[T]) (T, error) {
	var zero T
	reader, err := readFile(path)
	if err != nil {
		return zero, errors.Wrapf(err, "Unable to open %s!", collection.Name)
	}
	if _, err := bheader.Decode(reader); err != nil {
		return zero, errors.Wrapf(err, "Unable to open %s!", collection.Name)
	}
	strings, err := bpool.Decode(reader)
	if err != nil {
		return zero, errors.Wrap(err, "Unable to parse string pool!")
	}
	t, err := collection.Decode(bframe.New(reader, strings, messages))
	if err != nil {
		return zero, errors.Wrapf(err, "Unable to parse %s table.", collection.Name)
	}
	return t, nil
}

// Load reads every bin under the configured input path, messages first since the rest are
// localized with them.
func Load(cfg *config.PowersConfig) (*model.Collections, error) {
	messages, err := ReadClientMessages(cfg.JoinToInputPath(ClientMessagesFile))
	if err != nil {
		return nil, err
	}

	c := &model.Collections{}
	if c.AttribNames, err = ReadCollection(cfg.JoinToInputPath(AttribNames.File), messages, AttribNames); err != nil {
		return nil, err
	}
	logCount(AttribNamesFile, len(c.AttribNames.AttrNames))
	if c.Archetypes, err = ReadCollection(cfg.JoinToInputPath(Archetypes.File), messages, Archetypes); err != nil {
		return nil, err
	}
	logCount(ClassesFile, c.Archetypes.Len())
	if c.BoostSets, err = ReadCollection(cfg.JoinToInputPath(BoostSets.File), messages, BoostSets); err != nil {
		return nil, err
	}
	logCount(BoostSetsFile, c.BoostSets.Len())
	if c.VillainArchetypes, err = ReadCollection(cfg.JoinToInputPath(VillainArchetypes.File), messages, VillainArchetypes); err != nil {
		return nil, err
	}
	logCount(VillainClassesFile, c.VillainArchetypes.Len())
	if c.Villains, err = ReadCollection(cfg.JoinToInputPath(Villains.File), messages, Villains); err != nil {
		return nil, err
	}
	logCount(VillainDefFile, c.Villains.Len())
	if c.PowerCategories, err = ReadCollection(cfg.JoinToInputPath(PowerCategories.File), messages, PowerCategories); err != nil {
		return nil, err
	}
	logCount(PowerCategoriesFile, c.PowerCategories.Len())
	if c.PowerSets, err = ReadCollection(cfg.JoinToInputPath(PowerSets.File), messages, PowerSets); err != nil {
		return nil, err
	}
	logCount(PowerSetsFile, c.PowerSets.Len())
	if c.Powers, err = ReadCollection(cfg.JoinToInputPath(Powers.File), messages, Powers); err != nil {
		return nil, err
	}
	logCount(PowersFile, c.Powers.Len())
	return c, nil
}

func logCount(file string, count int) {
	slog.Info("read collection", "file", file, "count", count)
}
