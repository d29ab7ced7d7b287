// Package stream drives the SL2/SL3 decoders over chunked input and produces the
// ordered sequence of records.
//
// # Push and Pull
//
// A Session is fed by the caller. Bytes arrive through Write in chunks of any
// size, including single bytes, and records come out of Next. Whenever the
// buffered input does not hold a complete prologue or block, Next returns
// errs.ErrNeedMore and keeps any partially parsed block header:
//
//	sess, _ := stream.NewSession(stream.WithFeetToMeter(true))
//	defer sess.Close()
//	for chunk := range chunks {
//	    sess.Write(chunk)
//	    for {
//	        rec, err := sess.Next()
//	        if errors.Is(err, errs.ErrNeedMore) {
//	            break
//	        }
//	        ...
//	    }
//	}
//	sess.CloseInput()
//	// drain the remaining records until io.EOF
//
// A Reader pulls from an io.Reader instead. It reads one chunk only when the
// session asks for more, and exposes the records as an iter.Seq2:
//
//	r, _ := stream.NewReader(file, stream.WithProjection(true))
//	defer r.Close()
//	for rec, err := range r.All(ctx) {
//	    if err != nil {
//	        return err
//	    }
//	    ...
//	}
//
// The same records come out regardless of how the input is chunked.
//
// # End of Input
//
// After CloseInput (or io.EOF from the source) a stream that ends between
// blocks finishes with io.EOF. A stream that ends inside the prologue or a
// block is truncated: by default the incomplete block is dropped and the
// stream finishes with io.EOF, and Stats.Truncated is set. WithStrictTail(true)
// reports errs.ErrTruncatedTail instead.
//
// errs.ErrUnsupportedFormat and errs.ErrCorruptBlock are terminal. Records
// emitted before them stay valid. The format cannot be resynchronized.
//
// # Conversion
//
// Records are converted with convert.Config.Apply before they are returned.
// WithConversion sets every conversion at once; WithFeetToMeter, WithRadToDeg,
// WithSpeedUnit and WithProjection set them one by one. Without any of them
// records carry the on-disk values.
//
// # Resources
//
// No goroutines are started. Each session owns one pooled buffer that holds
// only the not yet consumed input, which is returned to the pool by Close.
package stream
