// Package template defines the template-engine seam used for form chrome and
// help pages, keeping renderer packages decoupled from the concrete engine.
package template
