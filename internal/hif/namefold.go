package hif

import "golang.org/x/text/cases"

// FindByNameFold is FindByName under Unicode case folding, for source
// languages whose identifiers are case-insensitive. Returns the zero T when
// no element matches.
func (l *BList[T]) FindByNameFold(name string) T {
	var zero T
	folder := cases.Fold()
	want := folder.String(name)
	for e := l.core.head; e != nil; e = e.next {
		if n, ok := NameOf(e.obj); ok && folder.String(n) == want {
			return e.obj.(T)
		}
	}
	return zero
}
