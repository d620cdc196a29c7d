package postfix

import (
	"fmt"
	"io"
	"path"
	"sort"

	"github.com/rakyll/statik/fs"
)

//go:generate statik -src=scripts

// RunScripts evaluates the bundled example scripts. The statik package must
// be linked in for the scripts to be found.
func RunScripts(w io.Writer) error {
	statikFS, err := fs.New()
	if err != nil {
		return err
	}
	dir, err := statikFS.Open("/")
	if err != nil {
		return err
	}
	defer dir.Close()

	fis, err := dir.Readdir(-1)
	if err != nil {
		return err
	}
	sort.Slice(fis, func(i, j int) bool {
		return fis[i].Name() < fis[j].Name()
	})
	for _, fi := range fis {
		if fi.IsDir() {
			continue
		}
		f, err := statikFS.Open(path.Join("/", fi.Name()))
		if err != nil {
			return err
		}
		fmt.Fprintf(w, ";; %s\n", fi.Name())
		err = EvalLines(f, w)
		f.Close()
		if err != nil {
			return err
		}
	}

	return nil
}
