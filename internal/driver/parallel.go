package driver

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"numlit/internal/diag"
	"numlit/internal/parsenum"
	"numlit/internal/source"
	"numlit/internal/trace"
)

// ScanFiles loads every path into one FileSet and scans the files in
// parallel. Results come back in the order of paths. A file that cannot be
// read yields an IOLoadFileError diagnostic instead of failing the run.
func ScanFiles(ctx context.Context, paths []string, p *parsenum.Parser, opts Options) (*source.FileSet, []FileResult, error) {
	ctx, span := trace.StartSpan(ctx, trace.ScopeRun, "scan")
	tracer := trace.FromContext(ctx)
	defer span.End("")
	span.WithExtra("files", fmt.Sprint(len(paths)))

	// FileSet не потокобезопасен: загружаем всё до запуска горутин.
	fileSet := source.NewFileSet()
	ids := make([]source.FileID, len(paths))
	loadErrors := make(map[int]error)
	for i, path := range paths {
		id, err := fileSet.Load(path)
		if err != nil {
			trace.Error(tracer, trace.ScopeFile, "load:"+path, span.ID(), err)
			loadErrors[i] = err
			id = fileSet.AddVirtual(path, nil)
		}
		ids[i] = id
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Индексы уникальны для каждой горутины, мьютекс не нужен.
	results := make([]FileResult, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(jobs, len(paths))))

	for i := range paths {
		g.Go(func() error {
			if loadErr, ok := loadErrors[i]; ok {
				bag := diag.NewBag(opts.MaxDiagnostics)
				bag.Add(diag.Diagnostic{
					Severity: diag.SevError,
					Code:     diag.IOLoadFileError,
					Message:  loadErr.Error(),
					Primary:  source.Span{File: ids[i]},
				})
				results[i] = FileResult{Path: fileSet.Get(ids[i]).Path, FileID: ids[i], Bag: bag}
				return nil
			}

			res, err := ScanFile(gctx, fileSet, ids[i], p, opts)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, nil, err
	}
	return fileSet, results, nil
}

// MergeBags collects the diagnostics of all results into one sorted,
// de-duplicated bag.
// Per-file limits have already been applied; output trimming is up to the caller.
func MergeBags(results []FileResult) *diag.Bag {
	out := diag.NewBag(0)
	for _, r := range results {
		out.Merge(r.Bag)
	}
	out.Sort()
	out.Dedup()
	return out
}
