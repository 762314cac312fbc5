package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/atkphpframework/atk/pkg/node"
	"github.com/atkphpframework/atk/pkg/nodedef"
	"github.com/atkphpframework/atk/pkg/record"
	"github.com/atkphpframework/atk/pkg/render"
	"github.com/atkphpframework/atk/pkg/render/template/pongo"
	"github.com/atkphpframework/atk/pkg/renderers/vanilla"
)

func main() {
	defs := flag.String("defs", "nodes", "directory holding node definition YAML files")
	nodeName := flag.String("node", "", "node to render")
	mode := flag.String("mode", "edit", "form mode (add, edit, view)")
	output := flag.String("output", "", "output file (stdout if empty)")
	flag.Parse()

	if *nodeName == "" {
		log.Fatal("missing -node")
	}

	store, err := nodedef.LoadFS(os.DirFS(*defs))
	if err != nil {
		log.Fatalf("load definitions: %v", err)
	}

	n, err := store.Build(*nodeName)
	if err != nil {
		log.Fatalf("build node: %v", err)
	}

	engine, err := pongo.New(pongo.WithFS(vanilla.TemplatesFS()))
	if err != nil {
		log.Fatalf("configure templates: %v", err)
	}
	fr, err := node.NewFormRenderer(engine, vanilla.New())
	if err != nil {
		log.Fatalf("configure renderer: %v", err)
	}

	markup, err := fr.EditForm(n, record.Record{}, nil, render.RenderOptions{Mode: *mode})
	if err != nil {
		log.Fatalf("render form: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, []byte(markup), 0o644); err != nil {
			log.Fatalf("write output: %v", err)
		}
		fmt.Printf("Form written to %s\n", *output)
		return
	}
	fmt.Println(markup)
}
