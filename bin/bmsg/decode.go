package bmsg

import (
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"

	"powers-dict/bin/berr"
	"powers-dict/bin/lbytes"
)

const (
	Signature = 20090521
	chunkSize = 8192
)

// Decode reads a whole message store: signature, message strings, variable strings and the
// message id table.
func Decode(reader *lbytes.Reader) (*MessageStore, error) {
	signature, err := reader.ReadU32()
	if err != nil {
		return nil, errors.Wrap(err, "bmsg.Decode error reading signature")
	}
	if signature != Signature {
		return nil, berr.New(berr.MissingCrypticSig)
	}

	store := NewMessageStore()
	if store.Messages, err = ReadStringTable(reader); err != nil {
		return nil, errors.Wrap(err, "bmsg.Decode error reading messages")
	}
	if store.Variables, err = ReadStringTable(reader); err != nil {
		return nil, errors.Wrap(err, "bmsg.Decode error reading variables")
	}
	if err := ReadMessageIDs(reader, store); err != nil {
		return nil, errors.Wrap(err, "bmsg.Decode error reading message ids")
	}
	return store, nil
}

// ReadStringTable splits the table on NUL bytes. Some bytes are rewritten on the way: 0xA0 is a
// space, everything else outside printable ASCII is dropped.
func ReadStringTable(reader *lbytes.Reader) ([]string, error) {
	// the string count is not reliable, the table length is
	if _, err := reader.ReadU32(); err != nil {
		return nil, err
	}
	expectedBytes, err := reader.ReadU32()
	if err != nil {
		return nil, err
	}

	result := make([]string, 0)
	current := make([]byte, 0, 64)
	for remaining := int(expectedBytes); remaining > 0; {
		chunk, err := reader.ReadBytes(min(remaining, chunkSize))
		if err != nil {
			return nil, err
		}
		remaining -= len(chunk)
		for _, b := range chunk {
			switch {
			case b == 0:
				if !utf8.Valid(current) {
					return nil, berr.New(berr.StringConversion)
				}
				result = append(result, strings.ReplaceAll(string(current), "&nbsp;", " "))
				current = current[:0]
			case b == 0xA0:
				current = append(current, ' ')
			case b >= 0x80, b <= 0x1F:
			default:
				current = append(current, b)
			}
		}
	}
	return result, nil
}

func ReadMessageIDs(reader *lbytes.Reader, store *MessageStore) error {
	count, err := reader.ReadU32()
	if err != nil {
		return err
	}
	for i := uint32(0); i < count; i++ {
		key, textMessage, err := readMessageID(reader)
		if err != nil {
			return errors.Wrapf(err, "bmsg.ReadMessageIDs error reading entry %d", i)
		}
		store.MessageIDs[key] = textMessage
	}
	return nil
}

func readMessageID(reader *lbytes.Reader) (string, *TextMessage, error) {
	length, err := reader.ReadU32()
	if err != nil {
		return "", nil, err
	}
	key, err := reader.ReadString(int(length))
	if err != nil {
		return "", nil, err
	}
	textMessage := TextMessage{}
	if textMessage.MessageIndex, err = reader.ReadU32(); err != nil {
		return "", nil, err
	}
	if textMessage.HelpIndex, err = reader.ReadU32(); err != nil {
		return "", nil, err
	}
	varCount, err := reader.ReadU32()
	if err != nil {
		return "", nil, err
	}
	for i := uint32(0); i < varCount; i++ {
		v, err := reader.ReadU32()
		if err != nil {
			return "", nil, err
		}
		textMessage.Vars = append(textMessage.Vars, v)
	}
	return key, &textMessage, nil
}
