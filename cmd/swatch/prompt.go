package main

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/alexisbeaulieu97/swatch/internal/codec"
	"github.com/alexisbeaulieu97/swatch/internal/hexcolor"
)

var errAborted = errors.New("aborted by user")

func runForm(groups ...*huh.Group) error {
	err := huh.NewForm(groups...).Run()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return errAborted
		}
		return err
	}
	return nil
}

func promptHex(title, current string) (string, error) {
	value := current
	err := runForm(huh.NewGroup(
		huh.NewInput().
			Title(title).
			Placeholder("#rrggbb").
			CharLimit(7).
			Value(&value).
			Validate(func(s string) error {
				if !hexcolor.IsValid(hexcolor.Normalize(s)) {
					return fmt.Errorf("enter # followed by six hex digits")
				}
				return nil
			}),
	))
	if err != nil {
		return "", err
	}
	return hexcolor.Normalize(value), nil
}

func promptFormats(current codec.FormatSet) (codec.FormatSet, error) {
	options := make([]huh.Option[string], 0, len(codec.Formats()))
	for _, f := range codec.Formats() {
		options = append(options, huh.NewOption(string(f), string(f)))
	}

	selected := current.Strings()
	err := runForm(huh.NewGroup(
		huh.NewMultiSelect[string]().
			Title("Display formats").
			Options(options...).
			Value(&selected),
	))
	if err != nil {
		return codec.FormatSet{}, err
	}

	formats := make([]codec.Format, 0, len(selected))
	for _, tag := range selected {
		formats = append(formats, codec.Format(tag))
	}
	return codec.NewFormatSet(formats...), nil
}
