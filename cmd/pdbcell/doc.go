// 14 October 2026

/*
Pdbcell reads crystal structures in the old fixed column PDB format and
answers questions that need the unit cell and the space group.
Files may be gzipped. mmCIF files are recognised, but not read.

Usage:

	pdbcell [global flags] command [flags] args

The commands are:

	info FILE...
		Title, method, cell, space group and counts of chains and atoms.
	near FILE ATOM1 ATOM2
		Distance from ATOM1 to the nearest symmetry image of ATOM2.
		Atoms look like A/12/CA or A/12A/CA with an insertion code.
		If both atoms are the same, the nearest mate is reported.
	contacts FILE
		All pairs of atoms, including symmetry mates, closer than a cutoff.
	special FILE
		Atoms sitting on or near a symmetry element.
	seqres FILE
		Entities, their chains and one letter sequences.
	check FILE
		Chain breaks from CA distances and cis peptides that are not
		in the CISPEP records.
	batch DIR
		Walk a directory of PDB files, read them in parallel and count
		elements. Output is csv. Optionally writes prometheus metrics.
	fetch CODE
		Download an entry from one of the PDB sites.
	version

Global flags:

	--config file
		yaml or toml configuration file.
	--log-level level
		debug, info, warn or error
	--log-format format
		console or json
	--toml
		Write results as toml instead of text.

Every configuration key can also be set from the environment with a
PDBCELL_ prefix, so contacts.cutoff becomes PDBCELL_CONTACTS_CUTOFF.
Flags win over the environment, which wins over the config file.
*/
package main
