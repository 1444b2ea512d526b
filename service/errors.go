package service

import "errors"

// ErrNotInitialized is returned by Evaluate/Capabilities-adjacent calls made
// before BuildGraph has installed a graph, mirroring the "project may not be
// initialized" responses in original_source/src/provider/csharp.rs's evaluate.
var ErrNotInitialized = errors.New("service: project not initialized")

// ErrUnknownCapability is returned when an Evaluate request names a
// capability this provider doesn't implement.
var ErrUnknownCapability = errors.New("service: unknown capability")
