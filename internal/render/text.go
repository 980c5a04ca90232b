// Package render draws read-only game snapshots as plain text.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"ludo/internal/domain"
)

// rowLength is how many track squares are printed per line.
const rowLength = 13

// Text writes the shared track followed by every player's token statuses.
func Text(w io.Writer, snap domain.Snapshot) error {
	ew := &errWriter{w: w}

	squares := make([]string, domain.TrackLength)
	for pos := range squares {
		squares[pos] = square(snap, pos)
	}
	ew.printf("Main track (0-%d):\n", domain.TrackLength-1)
	for i := 0; i < domain.TrackLength; i += rowLength {
		ew.printf("%s\n", strings.Join(squares[i:min(i+rowLength, domain.TrackLength)], " "))
	}

	title := cases.Title(language.Und)
	for p, pl := range snap.Players {
		marker := ""
		if p == snap.Current && snap.Winner == domain.NoWinner {
			marker = " *"
		}
		ew.printf("%s (%s, home entry %d)%s:\n", pl.Name, title.String(string(pl.Colour)), pl.HomeEntry, marker)
		for t, tok := range pl.Tokens {
			ew.printf("  Token %d: %s\n", t+1, TokenStatus(tok))
		}
	}
	return ew.err
}

// TokenStatus describes where one token is.
func TokenStatus(tok domain.TokenView) string {
	switch tok.State {
	case domain.TokenYard:
		return "yard"
	case domain.TokenFinished:
		return "finished"
	case domain.TokenHome:
		return "home " + strconv.Itoa(tok.HomeSlot)
	default:
		return fmt.Sprintf("track pos %d (step %d)", tok.Position, tok.Step)
	}
}

func square(snap domain.Snapshot, pos int) string {
	occ := snap.Occupants[pos]
	switch len(occ) {
	case 0:
		return "."
	case 1:
		colour := string(snap.Players[occ[0].Player].Colour)
		return strings.ToUpper(colour[:1])
	default:
		return strconv.Itoa(len(occ))
	}
}

// errWriter keeps the first write error and skips later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
