// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package fileutil provides the file helpers used to persist endpoint
// definitions.
//
// AtomicWriteFile writes to a temporary file in the target directory, syncs
// it, sets permissions and renames it into place. Renames are retried a few
// times with a short backoff to ride out transient failures on some
// filesystems.
//
//	if err := fileutil.AtomicWriteFile("endpoints.yaml", data, fileutil.FilePermission); err != nil {
//	    return err
//	}
package fileutil
