// Package nodedef loads declarative node definitions from YAML files and
// builds runtime nodes from them. Help markup embedded in definitions is
// sanitized before it reaches any rendered page.
package nodedef
