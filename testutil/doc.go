// Package testutil holds helpers shared by the package tests.
//
// CaptureOutput collects what a command prints through cliout; WriteFile
// creates fixture files such as endpoint definitions.
package testutil
