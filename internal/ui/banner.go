package ui

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
)

const bannerWord = "DEVSALARY"

// ColorizeText fades text between two random colours.
func ColorizeText(text string, random *rand.Rand) string {
	from := pterm.NewRGB(uint8(random.Intn(256)), uint8(random.Intn(256)), uint8(random.Intn(256)))
	to := pterm.NewRGB(uint8(random.Intn(256)), uint8(random.Intn(256)), uint8(random.Intn(256)))

	runes := []rune(text)
	total := float32(len(runes))

	var out string
	for i, r := range runes {
		out += from.Fade(0, total, float32(i), to).Sprint(string(r))
	}
	return out
}

// Banner renders the application name in big letters.
func Banner() (string, error) {
	text, err := pterm.DefaultBigText.
		WithLetters(putils.LettersFromString(bannerWord)).
		Srender()
	if err != nil {
		return "", fmt.Errorf("render banner: %w", err)
	}
	if !pterm.PrintColor {
		return text, nil
	}
	return ColorizeText(text, rand.New(rand.NewSource(time.Now().UnixNano()))), nil
}

// PrintBanner writes the banner to w unless silenced.
func PrintBanner(w io.Writer, silence bool) error {
	if silence {
		return nil
	}
	banner, err := Banner()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, banner)
	return err
}
