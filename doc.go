// Copyright 2020 by David A. Golden. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

// Package bsonjson is a high-performance, streaming BSON-to-JSON transcoder.
// It converts a single well-formed BSON document into JSON text in one
// linear pass over the input, without building an intermediate object tree.
// Only the BSON types that have a natural JSON representation are supported;
// see Non-goals below.
//
// Two output modes are available.  Transcode runs synchronously and grows its
// output buffer on demand.  NewChunkedTranscoder runs the walk on a
// background goroutine and hands the caller chunks no larger than a fixed
// buffer through a
// ChunkReader, so a large document can be streamed to a writer without ever
// holding the whole JSON encoding in memory at once.
//
// Non-goals
//
// bsonjson does not attempt to render BSON types with no direct JSON
// equivalent (binary, regex, decimal128, timestamp, min/max key, code,
// code-with-scope, db pointer, symbol) -- encountering one is a fatal error,
// not a best-effort approximation.  Input UTF-8 is not validated: bytes are
// assumed already well-formed and are copied through unchanged.  Key order is
// preserved exactly as it appears in the input; there is no canonicalization.
// Output is always compact; there is no pretty-printing option.  There is no
// recovery from partial or truncated input -- a transcode either fully
// succeeds or fails as a whole.
package bsonjson
