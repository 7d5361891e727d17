package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"arviewer/internal/domain"
)

// console prints what a page would show.
type console struct {
	out io.Writer
}

func (c console) ShowError(msg string) { fmt.Fprintf(c.out, "error screen: %s\n", msg) }

func (c console) HideLoading() {}

func (c console) Alert(msg string) { fmt.Fprintf(c.out, "alert: %s\n", msg) }

func (c console) Notify(ev domain.Event) {
	b, err := json.Marshal(ev)
	if err != nil {
		fmt.Fprintf(c.out, "event %s\n", ev.Kind)
		return
	}
	fmt.Fprintf(c.out, "%s\n", b)
}
