// Package apkindex retrieves and parses an Alpine-style remote package
// index. The index is served as APKINDEX.tar.gz under the repository base
// URL; inside, the APKINDEX member holds blank-line-separated stanzas of
// single-letter fields, of which three matter here: P (package name),
// V (version), and D (space-separated depends).
package apkindex
