package hif

// Copy returns a deep copy of o: same variant, same attributes, same
// structure, fresh nodes throughout, detached from any owner. Properties and
// code info are carried over. The walk is breadth-first so per-list element
// order is reproduced without recursion.
func Copy(o Object) Object {
	if isNilObj(o) {
		return nil
	}
	mustAlive("Copy", o)
	root := cloneShallow(o)
	type job struct{ src, dst Object }
	queue := []job{{o, root}}
	for len(queue) > 0 {
		j := queue[0]
		queue = queue[1:]

		for _, p := range j.src.impl().props {
			if p.Value == nil {
				j.dst.SetProperty(p.Name, nil)
				continue
			}
			pv := cloneShallow(p.Value)
			j.dst.SetProperty(p.Name, pv)
			queue = append(queue, job{p.Value, pv})
		}

		srcSlots := j.src.slots()
		dstSlots := j.dst.slots()
		for i, s := range srcSlots {
			d := dstSlots[i]
			if s.IsList() {
				for e := s.list.head; e != nil; e = e.next {
					c := cloneShallow(e.obj)
					d.list.adoptInto("Copy", c, d.list.tail, nil)
					queue = append(queue, job{e.obj, c})
				}
				continue
			}
			if c := s.Get(); c != nil {
				cc := cloneShallow(c)
				d.setObj(cc)
				queue = append(queue, job{c, cc})
			}
		}
	}
	return root
}

func cloneShallow(o Object) Object {
	c := o.shallowClone()
	c.SetCodeInfo(o.CodeInfo())
	return c
}
