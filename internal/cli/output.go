package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mesh-intelligence/stockroom/pkg/types"
)

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Fprintln(w, string(data))
	return nil
}

// describeItem renders an item for text output, with calendar dates.
func describeItem(it types.Item) string {
	expires := "never"
	if it.ExpirationDay != types.NeverExpires {
		expires = formatDay(it.ExpirationDay)
	}
	return fmt.Sprintf("%s - %s, quantity: %d, quality: %s, expires: %s",
		it.ItemID, it.Name, it.Quantity, it.Quality, expires)
}

func describePlacement(p types.Placement) string {
	return fmt.Sprintf("%s -> %s", p.Position, describeItem(p.Item))
}

// printPlacements writes one line per placement, or a JSON array.
func (a *app) printPlacements(w io.Writer, ps []types.Placement) error {
	if a.jsonMode {
		return printJSON(w, ps)
	}
	if len(ps) == 0 {
		fmt.Fprintln(w, "No items")
		return nil
	}
	for _, p := range ps {
		fmt.Fprintln(w, describePlacement(p))
	}
	return nil
}

func (a *app) printPlacement(w io.Writer, prefix string, p types.Placement) error {
	if a.jsonMode {
		return printJSON(w, p)
	}
	fmt.Fprintf(w, "%s %s\n", prefix, describePlacement(p))
	return nil
}
