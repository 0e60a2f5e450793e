package exported

// Snapshot is a read-only view of storage as it was before (pre) and after
// (post) the transaction under validation. Reads return nil for absent keys.
type Snapshot interface {
	ReadPre(key []byte) ([]byte, error)
	ReadPost(key []byte) ([]byte, error)
}
