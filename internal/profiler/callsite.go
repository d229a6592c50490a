package profiler

import (
	"fmt"
	"runtime"
)

// CallSite is the identity of a tracked scope: the source location of
// the begin/end/section call plus an optional section name. Two
// sections at the same call site but different names are distinct
// identities.
type CallSite struct {
	FilePath       string
	LineNumber     int
	FunctionName   string
	SectionName    string
	HasSectionName bool
}

// ID is the string form filePath|lineNumber|functionName[|sectionName],
// used to key children in the reconstructed call tree.
func (c *CallSite) ID() string {
	if c.HasSectionName {
		return fmt.Sprintf("%s|%d|%s|%s", c.FilePath, c.LineNumber, c.FunctionName, c.SectionName)
	}
	return fmt.Sprintf("%s|%d|%s", c.FilePath, c.LineNumber, c.FunctionName)
}

// The accessors below satisfy reconstruct.Location so the reconstruction
// package can read call-site fields without importing this package.

func (c *CallSite) GetFilePath() string { return c.FilePath }

func (c *CallSite) GetLineNumber() int { return c.LineNumber }

func (c *CallSite) GetFunctionName() string { return c.FunctionName }

func (c *CallSite) GetSectionName() (string, bool) { return c.SectionName, c.HasSectionName }

// captureCallSite inspects the call stack "skip" frames above its own
// caller, so Begin/End/Section attribute the record to the line that
// called them, not to the facade's implementation line.
func captureCallSite(sectionName string, skip int) *CallSite {
	pc, file, line, ok := runtime.Caller(skip + 1)
	funcName := "unknown"
	if ok {
		if fn := runtime.FuncForPC(pc); fn != nil {
			funcName = fn.Name()
		}
	}
	return &CallSite{
		FilePath:       file,
		LineNumber:     line,
		FunctionName:   funcName,
		SectionName:    sectionName,
		HasSectionName: sectionName != "",
	}
}
