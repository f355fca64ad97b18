//go:build gtk

package main

import (
	"github.com/gotk3/gotk3/gtk"
	"github.com/pkg/errors"

	"github.com/rocksolutions-io/PyFlow/editor/gtkwidgets"
	"github.com/rocksolutions-io/PyFlow/editor/uit"
)

func init() {
	backends["gtk"] = runGtk
}

func runGtk(form *uit.Form) error {
	if err := gtk.InitCheck(nil); err != nil {
		return errors.Wrap(err, "Gtk init")
	}

	win, err := gtk.WindowNew(gtk.WINDOW_TOPLEVEL)
	if err != nil {
		return errors.Wrap(err, "Gtk window")
	}
	win.SetTitle(windowTitle)
	win.SetDefaultSize(720, 900)
	win.Connect("destroy", gtk.MainQuit)

	scroll, err := gtk.ScrolledWindowNew(nil, nil)
	if err != nil {
		return errors.Wrap(err, "Gtk scroll")
	}
	scroll.Add(gtkwidgets.NewFormView(form).Build())
	win.Add(scroll)

	win.ShowAll()
	gtk.Main()
	return nil
}
