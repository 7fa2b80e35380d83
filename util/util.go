package util

import (
	"os"
	"sort"
	"strings"
	"time"

	"github.com/gookit/slog"
)

func TimeCost() func(str string) {
	//elapsed time logger
	bts := time.Now()
	return func(str string) {
		slog.Infof("%s, took %dms", str, time.Since(bts).Milliseconds())
	}
}

func InSlice[T comparable](target T, list []T) bool {
	for i := range list {
		if target == list[i] {
			return true
		}
	}
	return false
}

// SortCaseInsensitive sorts in place by lower-cased value, keeping the input order of equal keys.
func SortCaseInsensitive(list []string) {
	sort.SliceStable(list, func(i, j int) bool {
		return strings.ToLower(list[i]) < strings.ToLower(list[j])
	})
}

func WriteFile(filename string, text string) error {
	//create or truncate
	f, err := os.OpenFile(filename, os.O_WRONLY|os.O_TRUNC|os.O_CREATE, 0664)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.WriteString(text)
	return err
}
