package cactus

// BlockSplit implements spec §4.2's block_split: splits b into two new
// blocks of length splitPoint and b.Length()-splitPoint, partitioning every
// segment instance accordingly and destroying b. Requires
// 0 < splitPoint < b.Length(), else ErrOutOfRange.
//
// BlockSplit does NOT re-insert left/right into b's former Chain — chain
// membership is left to the caller, matching original_source's block_split,
// which calls block_destruct on the source without touching any Chain/Link
// structure.
func (f *Flower) BlockSplit(b Block, splitPoint int32) (left, right Block, err error) {
	f.muEntities.Lock()
	defer f.muEntities.Unlock()

	length := b.Length()
	if splitPoint <= 0 || splitPoint >= length {
		return Block{}, Block{}, ErrOutOfRange
	}

	left = f.constructBlock(splitPoint)
	right = f.constructBlock(length - splitPoint)

	if root, ok := b.RootSegment(); ok {
		if err := f.splitSegmentTree(root, nil, nil, left, right); err != nil {
			return Block{}, Block{}, err
		}
	} else {
		for _, seg := range b.Segments() {
			if _, _, err := f.splitOneSegment(seg, left, right); err != nil {
				return Block{}, Block{}, err
			}
		}
	}

	f.destroyBlock(b)
	return left, right, nil
}

// splitOneSegment partitions one segment instance across left and right,
// per spec §4.2 steps 1-3: constructs leftSeg/rightSeg (propagating sequence
// coordinates when present, mirroring each of the original segment's two
// caps independently since they are stored separately), links leftSeg.3Cap
// to rightSeg.5Cap, and transfers the original segment's 5'/3' adjacencies
// onto the new caps.
func (f *Flower) splitOneSegment(seg Segment, left, right Block) (leftSeg, rightSeg Segment, err error) {
	oldFive := seg.FiveCap()
	oldThree := seg.ThreeCap()
	fivePos, fiveStrand, fiveHasSeq := oldFive.SequencePosition()
	threePos, threeStrand, threeHasSeq := oldThree.SequencePosition()

	leftSeg = f.constructSegment(left, seg.Event())
	rightSeg = f.constructSegment(right, seg.Event())

	if fiveHasSeq {
		leftSeg.FiveCap().SetSequencePosition(fivePos, fiveStrand)
		rightSeg.FiveCap().SetSequencePosition(fivePos+left.Length(), fiveStrand)
	}
	if threeHasSeq {
		rightSeg.ThreeCap().SetSequencePosition(threePos, threeStrand)
		leftSeg.ThreeCap().SetSequencePosition(threePos-right.Length(), threeStrand)
	}

	if err := MakeAdjacent(leftSeg.ThreeCap(), rightSeg.FiveCap()); err != nil {
		return Segment{}, Segment{}, err
	}
	if adj, ok := oldFive.Adjacency(); ok {
		BreakAdjacency(oldFive)
		if err := MakeAdjacent(adj, leftSeg.FiveCap()); err != nil {
			return Segment{}, Segment{}, err
		}
	}
	if adj, ok := oldThree.Adjacency(); ok {
		BreakAdjacency(oldThree)
		if err := MakeAdjacent(adj, rightSeg.ThreeCap()); err != nil {
			return Segment{}, Segment{}, err
		}
	}
	return leftSeg, rightSeg, nil
}

// splitSegmentTree recurses down seg's phylogenetic children, preserving
// parent/child structure in the new blocks (spec §4.2 step 4). parentLeft/
// parentRight are nil at the tree root, in which case the new root instances
// are recorded on left/right instead of linked to a parent.
func (f *Flower) splitSegmentTree(seg Segment, parentLeft, parentRight *Segment, left, right Block) error {
	leftSeg, rightSeg, err := f.splitOneSegment(seg, left, right)
	if err != nil {
		return err
	}

	if parentLeft != nil {
		setSegmentParent(leftSeg, *parentLeft)
		setSegmentParent(rightSeg, *parentRight)
	} else {
		left.SetRootSegment(leftSeg)
		right.SetRootSegment(rightSeg)
	}

	for _, child := range seg.Children() {
		if err := f.splitSegmentTree(child, &leftSeg, &rightSeg, left, right); err != nil {
			return err
		}
	}
	return nil
}

// destroyBlock removes b, its two Ends, and every Segment/Cap instance from
// the flower's arenas (spec §3 "Destroying a block destroys all its
// Segments ... removes it from its Flower, and frees both the block and its
// reverse companion" — the reverse companion shares this same record, so one
// delete reclaims both orientations).
func (f *Flower) destroyBlock(b Block) {
	d, ok := f.blocks[b.name]
	if !ok {
		return
	}
	for segName := range d.segments {
		sd := f.segments[segName]
		delete(f.caps, sd.fiveCap)
		delete(f.caps, sd.threeCap)
		delete(f.segments, segName)
	}
	delete(f.ends, d.fiveEnd)
	delete(f.ends, d.threeEnd)
	delete(f.blocks, b.name)
}
