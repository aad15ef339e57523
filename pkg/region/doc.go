/*
Package region locates a marker-delimited span of lines in a text document and
splices a replacement block over it.

	  lines[0:start]          kept verbatim
	+----------------+
	| start marker   |  <- dropped (the block re-emits it)
	| ...            |  <- dropped
	+----------------+
	| end marker     |  <- kept, first line of the tail
	  lines[end:]             kept verbatim

🎯 Purpose:
- Find the region with a single top to bottom scan
- Replace or remove it without touching any other byte of the file

🔄 Scan rules:
1. Every line containing the start marker overwrites start (last wins)
2. The first line containing the end marker sets end and stops the scan
3. Start markers below the first end marker are never seen

⚠️ Ambiguity:
Duplicate markers are not reported. The rules above pick a line
deterministically, and that line can be the wrong one when a marker is not
unique above the first end marker. Choose markers that are.

🚫 Failures:
- ErrMarkerNotFound: either marker never matched (*MarkerNotFoundError says which)
- ErrInvertedRegion: start resolved at or after end (*InvertedRegionError)

Splicing is not idempotent. The start marker line is dropped, so a second run
over the output fails with ErrMarkerNotFound unless the block re-emits it.

🔍 Example:

	doc := region.Parse(data)
	out, match, err := doc.Replace(region.Markers{Start: "// BEGIN", End: "// END"}, block)
	if errors.Is(err, region.ErrMarkerNotFound) {
		return err
	}
	os.WriteFile(path, out.Bytes(), 0o644)
*/
package region
