package main

import (
	"flag"
	"log"
	"os"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"github.com/rocksolutions-io/PyFlow/config"
	"github.com/rocksolutions-io/PyFlow/editor/giowidgets"
	"github.com/rocksolutions-io/PyFlow/editor/uit"
	"github.com/rocksolutions-io/PyFlow/pins"
	"github.com/rocksolutions-io/PyFlow/utils"
)

const windowTitle = "Pin inputs"

// backends maps -backend flag value to function running event loop until window is closed
var backends = map[string]func(form *uit.Form) error{
	"gio": runGio,
}

func main() {
	policyPath := flag.String("policy", "", "yaml file with numeric policy of spin boxes")
	backend := flag.String("backend", "gio", "ui toolkit (gio, or gtk when built with -tags gtk)")
	flag.Parse()

	run, ok := backends[*backend]
	if !ok {
		log.Fatalf("ERROR: unknown backend %q", *backend)
	}

	policy := config.DefaultNumericPolicy()
	if *policyPath != "" {
		var err error
		if policy, err = config.LoadNumericPolicyFile(*policyPath); err != nil {
			log.Fatalf("ERROR: %v", err)
		}
	}

	factory, err := uit.NewFactory(policy)
	if err != nil {
		log.Fatalf("ERROR: %v", err)
	}

	form, err := factory.NewForm(demoPins()...)
	if err != nil {
		log.Fatalf("ERROR: %v", err)
	}

	if err := run(form); err != nil {
		log.Fatalf("ERROR: %v", err)
	}
	form.Close()
}

func runGio(form *uit.Form) error {
	go func() {
		w := app.NewWindow(app.Title(windowTitle), app.Size(unit.Dp(720), unit.Dp(900)))
		if err := loop(w, giowidgets.NewFormView(form)); err != nil {
			log.Fatalf("ERROR: %v", err)
		}
		form.Close()
		os.Exit(0)
	}()
	app.Main()
	return nil
}

func demoPins() []*pins.Pin {
	var ps []*pins.Pin
	for _, dt := range pins.DataTypes {
		p, err := pins.NewPin("in"+dt.String(), dt, nil)
		if err != nil {
			panic(err)
		}
		p.ConnectOnChange("log", func(v any) {
			if p.Type == pins.Exec {
				log.Printf("[pins] %q executed", p.Name)
			} else if p.Type.IsAggregate() {
				utils.LogDump("[pins] "+p.Name+" =", v)
			} else {
				log.Printf("[pins] %q = %s", p.Name, utils.SValue(v))
			}
		})
		ps = append(ps, p)
	}
	return ps
}

func loop(w *app.Window, fv *giowidgets.FormView) error {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))

	var ops op.Ops
	for {
		switch e := w.NextEvent().(type) {
		case system.DestroyEvent:
			return e.Err
		case system.FrameEvent:
			gtx := layout.NewContext(&ops, e)
			layout.UniformInset(unit.Dp(8)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				return fv.Layout(gtx, th)
			})
			e.Frame(gtx.Ops)
		}
	}
}
