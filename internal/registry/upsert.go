package registry

// Upsert returns a document in which t.ID maps to exactly one entry built
// from t. The input document is never modified.
//
// Under InsertIfAbsent an existing entry wins: the original document comes
// back with an AlreadyPresent outcome. Under Replace every entry for t.ID
// is dropped and the new one is appended, so repeated runs converge on the
// same document.
func Upsert(doc Document, t Target, policy Policy) (Document, Outcome, error) {
	t.Richness = t.Richness.resolve(policy)
	entry, err := NewEntry(t)
	if err != nil {
		return nil, Outcome{}, err
	}

	var (
		out     Document
		outcome Outcome
	)
	switch policy {
	case InsertIfAbsent:
		if doc.IndexOf(t.ID) >= 0 {
			return doc, Outcome{Kind: AlreadyPresent}, nil
		}
		out = make(Document, len(doc), len(doc)+1)
		copy(out, doc)
		outcome.Kind = Added
	default:
		outcome.PreviousVersion, _ = doc.VersionOf(t.ID)
		out = doc.Without(t.ID)
		outcome.Kind = Updated
	}

	raw, err := entry.MarshalRaw()
	if err != nil {
		return nil, Outcome{}, err
	}
	return append(out, raw), outcome, nil
}
