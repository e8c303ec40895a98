package repo

// CheckoutFile restores a file from the current commit into the working
// tree. Staging is untouched.
func (r *Repository) CheckoutFile(name string) error {
	headID, err := r.Meta.HeadCommitID()
	if err != nil {
		return err
	}
	return r.checkoutFileFrom(headID, name)
}

// CheckoutFileAt restores a file from the commit named by id (full or
// unambiguous prefix).
func (r *Repository) CheckoutFileAt(id, name string) error {
	full, err := r.Meta.ResolveCommitID(id)
	if err != nil {
		return err
	}
	if full == "" {
		return ErrNoCommitWithID
	}
	return r.checkoutFileFrom(full, name)
}

func (r *Repository) checkoutFileFrom(commitID, name string) error {
	c, err := r.Meta.GetCommit(commitID)
	if err != nil {
		return err
	}
	fp, ok := c.Tree[name]
	if !ok {
		return ErrFileNotInCommit
	}
	data, err := r.Blobs.Get(fp)
	if err != nil {
		return err
	}
	return r.Worktree.Write(name, data)
}

// CheckoutBranch restores the working tree to the head of the given branch
// and repoints HEAD at it. No branch pointer moves.
func (r *Repository) CheckoutBranch(name string) error {
	if !r.Meta.BranchExists(name) {
		return ErrNoSuchBranch
	}
	current, err := r.Meta.CurrentBranch()
	if err != nil {
		return err
	}
	if name == current {
		return ErrCheckoutCurrent
	}

	targetID, err := r.Meta.ReadBranch(name)
	if err != nil {
		return err
	}
	if err := r.restoreCommit(targetID); err != nil {
		return err
	}
	return r.Meta.SetCurrentBranch(name)
}
