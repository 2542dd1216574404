package blockstore

import (
	"bytes"

	"github.com/cuemby/ledgerd/pkg/types"
)

// IsShredDuplicate compares an incoming shred against the stored shred at
// the same (slot, index, kind). If nothing is stored, there is nothing to
// compare against, so it returns found=false. Otherwise it rewrites the
// stored copy's retransmitter signature to the incoming shred's (if the
// incoming shred carries one — encode errors here are logged, not
// propagated, matching the reference's best-effort rewrite) before
// comparing byte-for-byte; a match means it is not a duplicate worth
// reporting.
func (r *Reader) IsShredDuplicate(incoming types.Shred) ([]byte, bool, error) {
	r.count("is_shred_duplicate")

	var stored types.Shred
	var found bool
	var err error
	if incoming.IsData() {
		stored, found, err = r.getDataShredPayload(incoming.Slot, incoming.Index)
	} else {
		stored, found, err = r.getCodeShredPayload(incoming.Slot, incoming.Index)
	}
	if err != nil || !found {
		return nil, false, err
	}

	modified := stored.Clone()
	if incoming.RetransmitterSignature != nil {
		modified.RetransmitterSignature = incoming.RetransmitterSignature
	}

	encoded, encErr := r.shredCodec.EncodeShred(modified)
	if encErr != nil {
		r.logEncodeFailure(encErr)
		encoded = modified.Payload
	}

	if bytes.Equal(encoded, incoming.Payload) {
		return nil, false, nil
	}
	return encoded, true, nil
}

// logEncodeFailure reports a best-effort shred re-encode failure via the
// installed Logger, if any.
func (r *Reader) logEncodeFailure(err error) {
	if r.logger == nil {
		return
	}
	r.logger.Errorf("blockstore: shred re-encode failed during duplicate check: %v", err)
}
