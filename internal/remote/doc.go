package remote

// Package remote implements the client for the repository listing API and the
// session-lifetime listing cache in front of it. Throttled responses are
// retried with exponential backoff; missing directories read as empty; every
// other failure degrades to an empty listing so browsing stays available.
