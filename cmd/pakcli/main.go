// Copyright (c) 2026 projectperil
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// pakcli builds and inspects pak asset archives.
//
//	pakcli build -out assets.pak -author you ./assets
//	pakcli list assets.pak
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/mmap"

	"github.com/projectperil/peril/pak"
)

var (
	buildFlags = flag.NewFlagSet("build", flag.ExitOnError)
	outPath    = buildFlags.String("out", "assets.pak", "Archive file to create")
	author     = buildFlags.String("author", "", "Author recorded in the archive header")
	version    = buildFlags.Int64("version", 1, "Archive version number")
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s build|list ...\n", os.Args[0])
	os.Exit(2)
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}

	switch os.Args[1] {
	case "build":
		buildFlags.Parse(os.Args[2:])
		if buildFlags.NArg() != 1 {
			usage()
		}
		build(buildFlags.Arg(0))
	case "list":
		if len(os.Args) != 3 {
			usage()
		}
		list(os.Args[2])
	default:
		usage()
	}
}

func build(dir string) {
	builder, err := pak.NewBuilder(pak.Header{
		Author:      *author,
		DateCreated: time.Now().Unix(),
		Version:     *version,
	})
	if err != nil {
		log.WithError(err).Fatal("could not create builder")
	}

	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		name, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		name = filepath.ToSlash(name)

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		log.WithFields(log.Fields{"file": name, "size": len(data)}).Info("adding")
		return builder.Add(name, data)
	})
	if err != nil {
		log.WithError(err).Fatal("could not gather files")
	}

	f, err := os.Create(*outPath)
	if err != nil {
		log.WithError(err).Fatal("could not create archive")
	}
	defer f.Close()

	written, err := builder.WriteTo(f)
	if err != nil {
		log.WithError(err).Fatal("could not write archive")
	}
	log.WithFields(log.Fields{"archive": *outPath, "bytes": written}).Info("done")
}

func list(path string) {
	r, err := mmap.Open(path)
	if err != nil {
		log.WithError(err).Fatal("could not open archive")
	}
	defer r.Close()

	ar, err := pak.Open(r)
	if err != nil {
		log.WithError(err).Fatal("could not read archive")
	}

	out, err := json.MarshalIndent(ar.Header(), "", "  ")
	if err != nil {
		log.WithError(err).Fatal("could not encode index")
	}
	fmt.Printf("%s\n", out)
}
