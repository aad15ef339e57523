/*
Package status owns file system access and per-file outcomes for splicerc.

	            +-------------+
	            |   Status    |
	            |  (Storage)  |
	            +------+------+
	                   |
	      +-----------+-----------+
	      |                       |
	+-----+-----+           +-----+-----+
	|   Files   |           |  Outcomes |
	| (Read/    |           | (spliced, |
	|  Rename)  |           |  failed)  |
	+-----------+           +-----------+

🎯 Purpose:
- Reads target files whole
- Replaces them atomically, or not at all
- Records what happened to each file

🔄 Flow:
1. The operation package reads a target through ReadFile
2. It splices in memory; nothing touches disk on failure
3. WriteFileAtomic writes a temp file beside the target and renames it over
4. TrackFile records the outcome for reporting

📝 Notes:
No lock is held between the read and the write. A file changed by another
process in between is overwritten. splicerc is a one-shot tool, not a service.

No backup is made; version control is expected to hold the original.
*/
package status
