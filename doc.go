// Package dawg's wire format, search engine, and minimizer are described
// alongside their implementations; see Builder for constructing a
// dictionary and Dawg for querying one.
//
// A typical program builds once and queries many times:
//
//	b := dawg.NewBuilder()
//	for _, w := range words {
//		b.Add(w)
//	}
//	d, stats := b.Build()
//	defer d.Close()
//
//	ok := d.Contains("EXAMPLE")
//	results, err := d.Subwords("LPEXAM?", "")
package dawg
