package common

import (
	"flag"
)

type Params struct {
	categoryFile string
	categoryName string
	logLevel     string
	rootPath     string
}

func ParseParams() *Params {
	categoryFile := flag.String("categoryFile", "", "Full path of the category file. Empty uses <dir>/.image-tagger.json")
	categoryName := flag.String("category", "", "Only list images in the category with this name")
	logLevel := flag.String("logLevel", "INFO", "Log level: ERROR, WARN, INFO, DEBUG, TRACE")

	flag.Parse()
	rootPath := flag.Arg(0)

	return &Params{
		categoryFile: *categoryFile,
		categoryName: *categoryName,
		logLevel:     *logLevel,
		rootPath:     rootPath,
	}
}

func (s *Params) CategoryFile() string {
	return s.categoryFile
}

func (s *Params) CategoryName() string {
	return s.categoryName
}

func (s *Params) LogLevel() string {
	return s.logLevel
}

func (s *Params) RootPath() string {
	return s.rootPath
}
