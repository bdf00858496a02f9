// Package stampfile writes a rendered version into a field of a project
// manifest such as package.json, Chart.yaml, Cargo.toml or a plain VERSION
// file. Like the template renderer, it only writes when the stored value
// differs from the new one.
package stampfile
